package domain

import (
	"fmt"
	"strings"
	"time"
)

type SessionID string

// SessionStatus values match the integers the backend serializes.
type SessionStatus int

const (
	SessionCancelled  SessionStatus = 0
	SessionClosed     SessionStatus = 1
	SessionInProgress SessionStatus = 2
	SessionScheduled  SessionStatus = 3
)

func (s SessionStatus) Valid() bool {
	switch s {
	case SessionCancelled, SessionClosed, SessionInProgress, SessionScheduled:
		return true
	default:
		return false
	}
}

func (s SessionStatus) Label() string {
	switch s {
	case SessionCancelled:
		return "Cancelada"
	case SessionClosed:
		return "Encerrada"
	case SessionInProgress:
		return "Em Andamento"
	case SessionScheduled:
		return "Agendada"
	default:
		return "Desconhecido"
	}
}

// ParseSessionStatus accepts the wire integer or a case-insensitive name.
func ParseSessionStatus(raw string) (SessionStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "0", "cancelled", "cancelada":
		return SessionCancelled, nil
	case "1", "closed", "encerrada":
		return SessionClosed, nil
	case "2", "in_progress", "inprogress", "em_andamento", "emandamento":
		return SessionInProgress, nil
	case "3", "scheduled", "agendada":
		return SessionScheduled, nil
	default:
		return 0, fmt.Errorf("unsupported session status %q", raw)
	}
}

type Session struct {
	ID          SessionID
	Name        string
	Description string
	Status      SessionStatus
	Date        time.Time
	OpenedAt    time.Time
	ClosedAt    time.Time
}

func (s Session) InProgress() bool {
	return s.Status == SessionInProgress
}

type SessionFilter struct {
	Name   string
	Date   time.Time
	Status *SessionStatus
}

type PageRequest struct {
	Limit  int
	Offset int
}

type SessionPage struct {
	Sessions []Session
	Offset   int
	HasMore  bool
}
