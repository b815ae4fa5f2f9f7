// Package fakebackend is an in-memory stand-in for the Câmara Digital API
// and its realtime hub, used by adapter, application and CLI tests.
package fakebackend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const NilID = "00000000-0000-0000-0000-000000000000"

type account struct {
	user          domain.User
	password      string
	passwordReset bool
}

type vote struct {
	domain.Vote
	link domain.SessionProjectID
}

type Backend struct {
	mu sync.Mutex

	accounts map[string]*account
	tokens   map[string]string
	sessions []domain.Session
	projects map[domain.SessionID][]domain.Project
	links    map[string]domain.SessionProjectID
	votes    []vote
	members  int
	calls    []string

	activeNotFound bool
	failReads      bool

	hub *hub
	now func() time.Time
}

func New() *Backend {
	return &Backend{
		accounts: map[string]*account{},
		tokens:   map[string]string{},
		projects: map[domain.SessionID][]domain.Project{},
		links:    map[string]domain.SessionProjectID{},
		members:  0,
		hub:      newHub(),
		now:      time.Now,
	}
}

func (b *Backend) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/sign-in", b.handleSignIn).Methods(http.MethodPost)

	authed := r.NewRoute().Subrouter()
	authed.Use(b.requireToken)
	authed.HandleFunc("/auth/refresh", b.handleRefresh).Methods(http.MethodPost)
	authed.HandleFunc("/User/change-password", b.handleChangePassword).Methods(http.MethodPut)
	authed.HandleFunc("/sessao/get-sessao-em-andamento", b.handleActiveSession).Methods(http.MethodGet)
	authed.HandleFunc("/sessao/list-by-camara", b.handleListSessions).Methods(http.MethodGet)
	authed.HandleFunc("/sessao/abrir-sessao", b.handleOpenSession).Methods(http.MethodPut)
	authed.HandleFunc("/sessao/encerrar-sessao", b.handleCloseSession).Methods(http.MethodPut)
	authed.HandleFunc("/Sessao/list-projetos-by-sessao", b.handleListProjects).Methods(http.MethodGet)
	authed.HandleFunc("/Projeto/read-by-status-em-votacao", b.handleProjectInVoting).Methods(http.MethodGet)
	authed.HandleFunc("/Projeto/update-projeto-status-by-current-vereador", b.handleUpdateProjectStatus).Methods(http.MethodPut)
	authed.HandleFunc("/Projeto/votar-no-projeto", b.handleCastVote).Methods(http.MethodPut)
	authed.HandleFunc("/Voto/vereador-already-vote-in-this-projeto", b.handleHasVoted).Methods(http.MethodGet)
	authed.HandleFunc("/SessaoProjeto/read-by-projeto-and-sessao", b.handleLink).Methods(http.MethodGet)
	authed.HandleFunc("/SessaoProjeto/list-vereadores-by-votos-in-sessao-projeto", b.handlePendingTally).Methods(http.MethodGet)
	authed.HandleFunc("/SessaoProjeto/list-votos-confirmados", b.handleConfirmedTally).Methods(http.MethodGet)
	authed.HandleFunc("/Voto/confirmar-voto", b.handleConfirmVote).Methods(http.MethodPut)
	authed.HandleFunc("/Voto/confirmar-todos-voto", b.handleConfirmAll).Methods(http.MethodPut)

	r.Handle("/hubs/votacao", b.hub.server(b.userForToken))
	return r
}

// AddUser registers a council member able to sign in with userName/password.
func (b *Backend) AddUser(userName, password string, president bool) domain.User {
	b.mu.Lock()
	defer b.mu.Unlock()

	user := domain.User{
		ID:        domain.UserID(uuid.NewString()),
		Name:      "Vereador " + userName,
		Email:     userName + "@camara.example",
		President: president,
	}
	b.accounts[userName] = &account{user: user, password: password}
	b.members++
	return user
}

func (b *Backend) RequirePasswordReset(userName string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if acc, ok := b.accounts[userName]; ok {
		acc.passwordReset = true
	}
}

// IssueToken returns a valid token for userName without going through sign-in.
func (b *Backend) IssueToken(userName string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	token := "tok-" + uuid.NewString()
	b.tokens[token] = userName
	return token
}

func (b *Backend) AddSession(s domain.Session) domain.Session {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s.ID == "" {
		s.ID = domain.SessionID(uuid.NewString())
	}
	b.sessions = append(b.sessions, s)
	return s
}

// SetSessionStatus changes a session's status without going through the API.
func (b *Backend) SetSessionStatus(id domain.SessionID, status domain.SessionStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.sessions {
		if b.sessions[i].ID == id {
			b.sessions[i].Status = status
		}
	}
}

func (b *Backend) AddProject(sessionID domain.SessionID, p domain.Project) (domain.Project, domain.SessionProjectID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if p.ID == "" {
		p.ID = domain.ProjectID(uuid.NewString())
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = b.now().UTC()
	}
	b.projects[sessionID] = append(b.projects[sessionID], p)
	link := domain.SessionProjectID(uuid.NewString())
	b.links[linkKey(p.ID, sessionID)] = link
	return p, link
}

func (b *Backend) Session(id domain.SessionID) (domain.Session, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return domain.FindSession(b.sessions, id)
}

func (b *Backend) Project(sessionID domain.SessionID, id domain.ProjectID) (domain.Project, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return domain.FindProject(b.projects[sessionID], id)
}

// Votes returns every vote recorded for link.
func (b *Backend) Votes(link domain.SessionProjectID) []domain.Vote {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := []domain.Vote{}
	for _, v := range b.votes {
		if v.link == link {
			out = append(out, v.Vote)
		}
	}
	return out
}

// SetActiveNotFound makes the active-session endpoint answer 404 instead of
// the nil-UUID sentinel when no session is in progress.
func (b *Backend) SetActiveNotFound(v bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.activeNotFound = v
}

// SetFailReads makes every authenticated GET answer 500.
func (b *Backend) SetFailReads(v bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failReads = v
}

// Calls lists "METHOD /path" for every request served, in order.
func (b *Backend) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

func (b *Backend) CountCalls(call string) int {
	n := 0
	for _, c := range b.Calls() {
		if c == call {
			n++
		}
	}
	return n
}

// Publish sends an event to every realtime connection joined to sessionID.
func (b *Backend) Publish(sessionID domain.SessionID, event domain.EventType, projectID domain.ProjectID) {
	b.hub.publish(string(sessionID), event, string(projectID))
}

// DropConnections closes every realtime connection from the server side.
func (b *Backend) DropConnections() {
	b.hub.dropAll()
}

// Joins counts group joins received by the realtime hub.
func (b *Backend) Joins() int {
	return b.hub.joinCount()
}

func (b *Backend) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if _, ok := b.userForToken(token); !ok {
			writeError(w, http.StatusUnauthorized, "", "Token inválido ou expirado")
			return
		}
		b.mu.Lock()
		b.calls = append(b.calls, r.Method+" "+r.URL.Path)
		failReads := b.failReads
		b.mu.Unlock()
		if failReads && r.Method == http.MethodGet {
			writeError(w, http.StatusInternalServerError, "", "Falha interna")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) userForToken(token string) (domain.User, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	userName, ok := b.tokens[token]
	if !ok {
		return domain.User{}, false
	}
	return b.accounts[userName].user, true
}

func linkKey(projectID domain.ProjectID, sessionID domain.SessionID) string {
	return string(projectID) + "|" + string(sessionID)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	body := map[string]string{"message": message}
	if code != "" {
		body["code"] = code
	}
	writeJSON(w, status, body)
}

func decodeBody(r *http.Request, out any) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}
