package domain

import "fmt"

// CanOpenSession allows opening a scheduled session only while no other
// session is in progress.
func CanOpenSession(target Session, others []Session) error {
	if target.Status != SessionScheduled {
		return fmt.Errorf("%w: session %s is %s, only scheduled sessions can be opened", ErrSessionConflict, target.ID, target.Status.Label())
	}
	for _, other := range others {
		if other.ID == target.ID {
			continue
		}
		if other.InProgress() {
			return fmt.Errorf("%w: session %s is already in progress", ErrSessionConflict, other.ID)
		}
	}
	return nil
}

func CanCloseSession(target Session) error {
	if !target.InProgress() {
		return fmt.Errorf("%w: session %s is %s, only sessions in progress can be closed", ErrSessionConflict, target.ID, target.Status.Label())
	}
	return nil
}

// CanSendToVoting allows a presented project to enter voting only while no
// other project of the same session is in voting.
func CanSendToVoting(target Project, siblings []Project) error {
	if target.Status != ProjectPresented {
		return fmt.Errorf("%w: project %s is %s, only presented projects can be sent to voting", ErrProjectConflict, target.ID, target.Status.Label())
	}
	for _, sibling := range siblings {
		if sibling.ID == target.ID {
			continue
		}
		if sibling.InVoting() {
			return fmt.Errorf("%w: project %s is already in voting", ErrProjectConflict, sibling.ID)
		}
	}
	return nil
}

func FindSession(sessions []Session, id SessionID) (Session, bool) {
	for _, s := range sessions {
		if s.ID == id {
			return s, true
		}
	}
	return Session{}, false
}

func FindProject(projects []Project, id ProjectID) (Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}
