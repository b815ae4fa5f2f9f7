package domain

import (
	"fmt"
	"strings"
	"time"
)

type VoteID string
type VoterID string

type VoteValue string

const (
	VoteYes     VoteValue = "Sim"
	VoteNo      VoteValue = "Nao"
	VoteAbstain VoteValue = "Abstencao"
)

func (v VoteValue) Valid() bool {
	switch v {
	case VoteYes, VoteNo, VoteAbstain:
		return true
	default:
		return false
	}
}

// VoteChoice is what the voter picks on screen; it maps onto a VoteValue.
type VoteChoice string

const (
	ChoiceApprove VoteChoice = "approve"
	ChoiceReject  VoteChoice = "reject"
	ChoiceAbstain VoteChoice = "abstain"
)

func ParseVoteChoice(raw string) (VoteChoice, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "approve", "aprovar", "sim", "yes":
		return ChoiceApprove, nil
	case "reject", "rejeitar", "nao", "não", "no":
		return ChoiceReject, nil
	case "abstain", "abster", "abster-se", "abstencao", "abstenção":
		return ChoiceAbstain, nil
	default:
		return "", fmt.Errorf("unsupported vote choice %q (approve|reject|abstain)", raw)
	}
}

func (c VoteChoice) Value() VoteValue {
	switch c {
	case ChoiceApprove:
		return VoteYes
	case ChoiceReject:
		return VoteNo
	case ChoiceAbstain:
		return VoteAbstain
	default:
		return ""
	}
}

func (c VoteChoice) Label() string {
	switch c {
	case ChoiceApprove:
		return "Aprovar"
	case ChoiceReject:
		return "Rejeitar"
	case ChoiceAbstain:
		return "Abster-se"
	default:
		return string(c)
	}
}

type Voter struct {
	ID   VoterID
	Name string
}

type Vote struct {
	ID         VoteID
	Voter      Voter
	Value      VoteValue
	CastAt     time.Time
	Confirmed  bool
	ApproverID string
}

// VoteTally is computed by the backend for one session-project pair.
type VoteTally struct {
	Yes     int
	No      int
	Abstain int
	Absent  int
	Total   int
	Votes   []Vote
}

// Outcome is the final decision the presiding officer can record.
type Outcome string

const (
	OutcomeApproved Outcome = "approved"
	OutcomeRejected Outcome = "rejected"
)

func ParseOutcome(raw string) (Outcome, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "approve", "approved", "aprovar", "aprovado":
		return OutcomeApproved, nil
	case "reject", "rejected", "rejeitar", "rejeitado", "reprovado":
		return OutcomeRejected, nil
	default:
		return "", fmt.Errorf("unsupported outcome %q (approve|reject)", raw)
	}
}

func (o Outcome) ProjectStatus() (ProjectStatus, error) {
	switch o {
	case OutcomeApproved:
		return ProjectApproved, nil
	case OutcomeRejected:
		return ProjectRejected, nil
	default:
		return 0, fmt.Errorf("unsupported outcome %q", string(o))
	}
}

// FinalSummary folds absentees into the abstention count; once a project is
// finalized absence is not reported as its own category.
type FinalSummary struct {
	Outcome    Outcome
	Yes        int
	No         int
	Abstention int
}

func SummarizeFinal(outcome Outcome, tally VoteTally) FinalSummary {
	return FinalSummary{
		Outcome:    outcome,
		Yes:        tally.Yes,
		No:         tally.No,
		Abstention: tally.Abstain + tally.Absent,
	}
}
