package domain

import "time"

// EventType names the messages the backend publishes to a session group.
type EventType string

const (
	EventVotingOpened   EventType = "VotacaoAberta"
	EventVotingClosed   EventType = "VotacaoEncerrada"
	EventVotesConfirmed EventType = "VotosConfirmados"
)

func (t EventType) Known() bool {
	switch t {
	case EventVotingOpened, EventVotingClosed, EventVotesConfirmed:
		return true
	default:
		return false
	}
}

type SessionEvent struct {
	Type       EventType
	SessionID  SessionID
	ProjectID  ProjectID
	ReceivedAt time.Time
}

// ConnState is the realtime connection lifecycle.
type ConnState string

const (
	ConnDisconnected ConnState = "disconnected"
	ConnConnecting   ConnState = "connecting"
	ConnConnected    ConnState = "connected"
	ConnReconnecting ConnState = "reconnecting"
	ConnFailed       ConnState = "failed"
)
