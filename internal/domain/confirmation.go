package domain

// ConfirmationBoard is what the presiding officer reviews: votes still
// waiting for confirmation and votes already locked in.
type ConfirmationBoard struct {
	Pending   []Vote
	Confirmed []Vote
	Tally     VoteTally
}

func (b ConfirmationBoard) PendingCount() int {
	return len(b.Pending)
}

// MergeTallies builds the board from the two independently fetched tallies.
// A vote present in confirmed never appears in pending, even when the
// pending response is stale and still lists it; pending entries flagged as
// confirmed move to the confirmed section.
func MergeTallies(pending VoteTally, confirmed VoteTally) ConfirmationBoard {
	board := ConfirmationBoard{
		Pending:   make([]Vote, 0, len(pending.Votes)),
		Confirmed: make([]Vote, 0, len(confirmed.Votes)+len(pending.Votes)),
		Tally:     pending,
	}

	seen := make(map[VoteID]struct{}, len(confirmed.Votes)+len(pending.Votes))
	for _, vote := range confirmed.Votes {
		if _, ok := seen[vote.ID]; ok {
			continue
		}
		seen[vote.ID] = struct{}{}
		vote.Confirmed = true
		board.Confirmed = append(board.Confirmed, vote)
	}

	for _, vote := range pending.Votes {
		if _, ok := seen[vote.ID]; ok {
			continue
		}
		seen[vote.ID] = struct{}{}
		if vote.Confirmed {
			board.Confirmed = append(board.Confirmed, vote)
			continue
		}
		board.Pending = append(board.Pending, vote)
	}

	return board
}

func (b ConfirmationBoard) FindByVoter(id VoterID) (Vote, bool) {
	for _, vote := range b.Confirmed {
		if vote.Voter.ID == id {
			return vote, true
		}
	}
	for _, vote := range b.Pending {
		if vote.Voter.ID == id {
			return vote, true
		}
	}
	return Vote{}, false
}
