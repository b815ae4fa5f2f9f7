package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNetwork            = errors.New("network unavailable")
	ErrSecretNotFound     = errors.New("secret not found")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrPasswordChange     = errors.New("password change required")
	ErrNotPresident       = errors.New("action restricted to the presiding officer")
	ErrNoActiveSession    = errors.New("no active session")
	ErrSessionEnded       = errors.New("session is no longer in progress")
	ErrNoProjectInVoting  = errors.New("no project in voting")
	ErrAlreadyVoted       = errors.New("vote already cast for this project")
	ErrVoteNotSequenced   = errors.New("project and session-project link must be resolved before voting")
	ErrVoteCancelled      = errors.New("vote cancelled")
	ErrSessionConflict    = errors.New("session state does not allow this action")
	ErrProjectConflict    = errors.New("project state does not allow this action")
	ErrFinalized          = errors.New("project outcome already finalized")
	ErrWeakPassword       = errors.New("password does not meet the complexity policy")
	ErrInvalidCredentials = errors.New("user name and password are required")
)

// ErrorKind classifies failures coming from the backend.
type ErrorKind string

const (
	ErrorKindNetwork      ErrorKind = "network"
	ErrorKindHTTP         ErrorKind = "http"
	ErrorKindUnauthorized ErrorKind = "unauthorized"
	ErrorKindNotFound     ErrorKind = "not_found"
)

const (
	MessageNetwork  = "Erro de conexão. Verifique sua internet e se a API está rodando."
	MessageFallback = "Erro na requisição"
)

// APIError carries the backend's structured code alongside the user-facing message.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d)", MessageFallback, e.Status)
	}
	return MessageFallback
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == ErrorKindNotFound
	case ErrUnauthorized:
		return e.Kind == ErrorKindUnauthorized
	case ErrNetwork:
		return e.Kind == ErrorKindNetwork
	default:
		return false
	}
}

// UserMessage returns the text shown to the user for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return err.Error()
}
