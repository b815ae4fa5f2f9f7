package fakebackend

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/google/uuid"
)

const tokenLifetime = time.Hour

type sessionBody struct {
	ID          string `json:"id"`
	Name        string `json:"nome"`
	Description string `json:"descricao,omitempty"`
	Status      int    `json:"status"`
	Date        string `json:"data"`
	OpenedAt    string `json:"abertoEm,omitempty"`
	ClosedAt    string `json:"encerradoEm,omitempty"`
}

type projectBody struct {
	ID          string `json:"id"`
	CreatedAt   string `json:"criadoEm"`
	Title       string `json:"titulo"`
	Description string `json:"descricao"`
	Status      int    `json:"status"`
	Approved    bool   `json:"aprovado"`
	AuthorID    string `json:"autorId"`
	AuthorName  string `json:"autorNome"`
}

type voterBody struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
}

type voteBody struct {
	ID         string    `json:"id"`
	ApproverID *string   `json:"aprovadorId"`
	CastAt     string    `json:"dataHora"`
	Value      string    `json:"valor"`
	Confirmed  bool      `json:"votoConfirmado"`
	Voter      voterBody `json:"vereadorVotante"`
}

type tallyBody struct {
	Abstain int        `json:"votosAbstencao"`
	Absent  int        `json:"votosFaltou"`
	No      int        `json:"votosNao"`
	Yes     int        `json:"votosSim"`
	Total   int        `json:"votosTotais"`
	Votes   []voteBody `json:"votos"`
}

func toSessionBody(s domain.Session) sessionBody {
	body := sessionBody{
		ID:          string(s.ID),
		Name:        s.Name,
		Description: s.Description,
		Status:      int(s.Status),
		Date:        s.Date.Format("2006-01-02T15:04:05"),
	}
	if !s.OpenedAt.IsZero() {
		body.OpenedAt = s.OpenedAt.Format(time.RFC3339)
	}
	if !s.ClosedAt.IsZero() {
		body.ClosedAt = s.ClosedAt.Format(time.RFC3339)
	}
	return body
}

func toProjectBody(p domain.Project) projectBody {
	return projectBody{
		ID:          string(p.ID),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		Title:       p.Title,
		Description: p.Description,
		Status:      int(p.Status),
		Approved:    p.Approved,
		AuthorID:    p.AuthorID,
		AuthorName:  p.AuthorName,
	}
}

func toVoteBody(v domain.Vote) voteBody {
	body := voteBody{
		ID:        string(v.ID),
		CastAt:    v.CastAt.Format(time.RFC3339),
		Value:     string(v.Value),
		Confirmed: v.Confirmed,
		Voter:     voterBody{ID: string(v.Voter.ID), Name: v.Voter.Name},
	}
	if v.ApproverID != "" {
		approver := v.ApproverID
		body.ApproverID = &approver
	}
	return body
}

func (b *Backend) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserName string `json:"userName"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "", err.Error())
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, r.Method+" "+r.URL.Path)

	acc, ok := b.accounts[req.UserName]
	if !ok || acc.password != req.Password {
		writeError(w, http.StatusBadRequest, "CREDENCIAIS_INVALIDAS", "Usuário ou senha inválidos")
		return
	}
	token := "tok-" + uuid.NewString()
	b.tokens[token] = req.UserName

	writeJSON(w, http.StatusOK, map[string]any{
		"accessToken": token,
		"expiration":  b.now().Add(tokenLifetime).UTC().Format(time.RFC3339),
		"nome":        acc.user.Name,
		"presidente":  acc.user.President,
		"currentUser": map[string]any{
			"id":         string(acc.user.ID),
			"nome":       acc.user.Name,
			"email":      acc.user.Email,
			"presidente": acc.user.President,
		},
		"camaraDTO": map[string]any{
			"id":     "camara-1",
			"nome":   "Câmara Municipal de Teste",
			"cidade": "Testópolis",
		},
		"passwordReseted": acc.passwordReset,
	})
}

func (b *Backend) handleRefresh(w http.ResponseWriter, r *http.Request) {
	old := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	b.mu.Lock()
	defer b.mu.Unlock()
	userName := b.tokens[old]
	delete(b.tokens, old)
	token := "tok-" + uuid.NewString()
	b.tokens[token] = userName

	writeJSON(w, http.StatusOK, map[string]any{
		"accessToken": token,
		"expiration":  b.now().Add(tokenLifetime).UTC().Format(time.RFC3339),
	})
}

func (b *Backend) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CurrentPassword string `json:"senhaAtual"`
		NewPassword     string `json:"novaSenha"`
		Confirmation    string `json:"confirmacaoSenha"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "", err.Error())
		return
	}
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	b.mu.Lock()
	defer b.mu.Unlock()
	acc := b.accounts[b.tokens[token]]
	if acc.password != req.CurrentPassword {
		writeError(w, http.StatusBadRequest, "SENHA_INCORRETA", "Senha atual incorreta")
		return
	}
	if req.NewPassword != req.Confirmation {
		writeError(w, http.StatusBadRequest, "", "As senhas não conferem")
		return
	}
	acc.password = req.NewPassword
	acc.passwordReset = false
	w.WriteHeader(http.StatusNoContent)
}

func (b *Backend) handleActiveSession(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.sessions {
		if s.InProgress() {
			writeJSON(w, http.StatusOK, toSessionBody(s))
			return
		}
	}
	if b.activeNotFound {
		writeError(w, http.StatusNotFound, "SESSAO_NAO_ENCONTRADA", "Nenhuma sessão em andamento")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":     NilID,
		"nome":   nil,
		"status": 0,
		"data":   "0001-01-01T00:00:00",
	})
}

func (b *Backend) handleListSessions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	name := strings.ToLower(q.Get("nome"))
	date := q.Get("data")
	status := q.Get("status")

	b.mu.Lock()
	defer b.mu.Unlock()

	matched := make([]sessionBody, 0, len(b.sessions))
	for _, s := range b.sessions {
		if name != "" && !strings.Contains(strings.ToLower(s.Name), name) {
			continue
		}
		if date != "" && s.Date.Format("2006-01-02") != date {
			continue
		}
		if status != "" && strconv.Itoa(int(s.Status)) != status {
			continue
		}
		matched = append(matched, toSessionBody(s))
	}

	if offset > len(matched) {
		offset = len(matched)
	}
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items":   matched[offset:end],
		"hasMore": end < len(matched),
	})
}

func (b *Backend) handleOpenSession(w http.ResponseWriter, r *http.Request) {
	b.transitionSession(w, r, domain.SessionScheduled, domain.SessionInProgress)
}

func (b *Backend) handleCloseSession(w http.ResponseWriter, r *http.Request) {
	b.transitionSession(w, r, domain.SessionInProgress, domain.SessionClosed)
}

func (b *Backend) transitionSession(w http.ResponseWriter, r *http.Request, from, to domain.SessionStatus) {
	var req struct {
		ID string `json:"id"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "", err.Error())
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.sessions {
		s := &b.sessions[i]
		if string(s.ID) != req.ID {
			continue
		}
		if s.Status != from {
			writeError(w, http.StatusConflict, "SESSAO_STATUS_INVALIDO", "Status da sessão não permite esta ação")
			return
		}
		s.Status = to
		if to == domain.SessionInProgress {
			s.OpenedAt = b.now().UTC()
		} else {
			s.ClosedAt = b.now().UTC()
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeError(w, http.StatusNotFound, "SESSAO_NAO_ENCONTRADA", "Sessão não encontrada")
}

func (b *Backend) handleListProjects(w http.ResponseWriter, r *http.Request) {
	sessionID := domain.SessionID(r.URL.Query().Get("id"))

	b.mu.Lock()
	defer b.mu.Unlock()
	projects := b.projects[sessionID]
	out := make([]projectBody, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectBody(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (b *Backend) handleProjectInVoting(w http.ResponseWriter, r *http.Request) {
	sessionID := domain.SessionID(r.URL.Query().Get("sessaoId"))

	b.mu.Lock()
	defer b.mu.Unlock()
	for sid, projects := range b.projects {
		if sessionID != "" && sid != sessionID {
			continue
		}
		for _, p := range projects {
			if p.InVoting() {
				writeJSON(w, http.StatusOK, toProjectBody(p))
				return
			}
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": NilID, "status": 0})
}

func (b *Backend) handleUpdateProjectStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"sessaoId"`
		ProjectID string `json:"projetoId"`
		Status    string `json:"status"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "", err.Error())
		return
	}
	status, err := domain.ParseProjectStatus(req.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, "", err.Error())
		return
	}

	sessionID := domain.SessionID(req.SessionID)
	b.mu.Lock()
	projects := b.projects[sessionID]
	found := false
	for i := range projects {
		if string(projects[i].ID) != req.ProjectID {
			continue
		}
		found = true
		projects[i].Status = status
		projects[i].Approved = status == domain.ProjectApproved
	}
	b.mu.Unlock()

	if !found {
		writeError(w, http.StatusNotFound, "PROJETO_NAO_ENCONTRADO", "Projeto não encontrado")
		return
	}

	switch status {
	case domain.ProjectInVoting:
		b.Publish(sessionID, domain.EventVotingOpened, domain.ProjectID(req.ProjectID))
	case domain.ProjectApproved, domain.ProjectRejected:
		b.Publish(sessionID, domain.EventVotingClosed, domain.ProjectID(req.ProjectID))
	}
	w.WriteHeader(http.StatusNoContent)
}

func (b *Backend) handleCastVote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProjectID string `json:"projetoId"`
		SessionID string `json:"sessaoId"`
		Value     string `json:"tipoVoto"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "", err.Error())
		return
	}
	value := domain.VoteValue(req.Value)
	if !value.Valid() {
		writeError(w, http.StatusBadRequest, "", "Tipo de voto inválido")
		return
	}
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	b.mu.Lock()
	defer b.mu.Unlock()
	user := b.accounts[b.tokens[token]].user
	project, ok := domain.FindProject(b.projects[domain.SessionID(req.SessionID)], domain.ProjectID(req.ProjectID))
	if !ok || !project.InVoting() {
		writeError(w, http.StatusConflict, "PROJETO_FORA_DE_VOTACAO", "Projeto não está em votação")
		return
	}
	link := b.links[linkKey(project.ID, domain.SessionID(req.SessionID))]
	for _, v := range b.votes {
		if v.link == link && v.Voter.ID == domain.VoterID(user.ID) {
			writeError(w, http.StatusConflict, "VOTO_DUPLICADO", "Vereador já votou neste projeto")
			return
		}
	}
	b.votes = append(b.votes, vote{
		Vote: domain.Vote{
			ID:     domain.VoteID(uuid.NewString()),
			Voter:  domain.Voter{ID: domain.VoterID(user.ID), Name: user.Name},
			Value:  value,
			CastAt: b.now().UTC(),
		},
		link: link,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (b *Backend) handleHasVoted(w http.ResponseWriter, r *http.Request) {
	link := domain.SessionProjectID(r.URL.Query().Get("sessaoProjetoId"))
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	b.mu.Lock()
	defer b.mu.Unlock()
	user := b.accounts[b.tokens[token]].user
	voted := false
	for _, v := range b.votes {
		if v.link == link && v.Voter.ID == domain.VoterID(user.ID) {
			voted = true
			break
		}
	}
	writeJSON(w, http.StatusOK, voted)
}

func (b *Backend) handleLink(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	key := linkKey(domain.ProjectID(q.Get("projetoId")), domain.SessionID(q.Get("sessaoId")))

	b.mu.Lock()
	defer b.mu.Unlock()
	link, ok := b.links[key]
	if !ok {
		writeError(w, http.StatusNotFound, "SESSAO_PROJETO_NOT_FOUND", "Vínculo sessão-projeto não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, string(link))
}

func (b *Backend) handlePendingTally(w http.ResponseWriter, r *http.Request) {
	link := domain.SessionProjectID(r.URL.Query().Get("id"))
	writeJSON(w, http.StatusOK, b.tally(link, false))
}

func (b *Backend) handleConfirmedTally(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	key := linkKey(domain.ProjectID(q.Get("projetoId")), domain.SessionID(q.Get("sessaoId")))

	b.mu.Lock()
	link := b.links[key]
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, b.tally(link, true))
}

// tally counts every vote on link and lists either the pending or the
// confirmed ones.
func (b *Backend) tally(link domain.SessionProjectID, confirmed bool) tallyBody {
	b.mu.Lock()
	defer b.mu.Unlock()

	body := tallyBody{Total: b.members, Votes: []voteBody{}}
	cast := 0
	for _, v := range b.votes {
		if v.link != link {
			continue
		}
		cast++
		switch v.Value {
		case domain.VoteYes:
			body.Yes++
		case domain.VoteNo:
			body.No++
		case domain.VoteAbstain:
			body.Abstain++
		}
		if v.Confirmed == confirmed {
			body.Votes = append(body.Votes, toVoteBody(v.Vote))
		}
	}
	body.Absent = b.members - cast
	return body
}

func (b *Backend) handleConfirmVote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionProjectID string `json:"sessaoProjetoId"`
		VoterID          string `json:"vereadorVotanteId"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "", err.Error())
		return
	}
	approver := b.approverFor(r)

	b.mu.Lock()
	found := false
	for i := range b.votes {
		v := &b.votes[i]
		if string(v.link) == req.SessionProjectID && string(v.Voter.ID) == req.VoterID {
			found = true
			v.Confirmed = true
			v.ApproverID = approver
		}
	}
	sessionID := b.sessionForLink(domain.SessionProjectID(req.SessionProjectID))
	b.mu.Unlock()

	if !found {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Voto não encontrado")
		return
	}
	b.Publish(sessionID, domain.EventVotesConfirmed, "")
	w.WriteHeader(http.StatusNoContent)
}

func (b *Backend) handleConfirmAll(w http.ResponseWriter, r *http.Request) {
	var link string
	if err := decodeBody(r, &link); err != nil {
		writeError(w, http.StatusBadRequest, "", err.Error())
		return
	}
	approver := b.approverFor(r)

	b.mu.Lock()
	for i := range b.votes {
		v := &b.votes[i]
		if string(v.link) == link && !v.Confirmed {
			v.Confirmed = true
			v.ApproverID = approver
		}
	}
	sessionID := b.sessionForLink(domain.SessionProjectID(link))
	b.mu.Unlock()

	b.Publish(sessionID, domain.EventVotesConfirmed, "")
	w.WriteHeader(http.StatusNoContent)
}

func (b *Backend) approverFor(r *http.Request) string {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	user, _ := b.userForToken(token)
	return string(user.ID)
}

// sessionForLink must be called with b.mu held.
func (b *Backend) sessionForLink(link domain.SessionProjectID) domain.SessionID {
	for key, candidate := range b.links {
		if candidate == link {
			_, sessionID, _ := strings.Cut(key, "|")
			return domain.SessionID(sessionID)
		}
	}
	return ""
}
