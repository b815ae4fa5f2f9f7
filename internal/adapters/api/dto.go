package api

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/camaradigital/camara-cli/internal/domain"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseTime accepts the layouts the backend emits; unparseable values are zero.
func parseTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// flexStatus decodes enum fields the backend sends either as integers or as names.
type flexStatus struct {
	raw string
}

func (f *flexStatus) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f.raw = s
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	f.raw = strconv.Itoa(n)
	return nil
}

type sessionDTO struct {
	ID          string     `json:"id"`
	Name        string     `json:"nome"`
	Description string     `json:"descricao"`
	Status      flexStatus `json:"status"`
	Date        string     `json:"data"`
	OpenedAt    string     `json:"abertoEm"`
	ClosedAt    string     `json:"encerradoEm"`
}

func (d sessionDTO) toDomain() domain.Session {
	status, err := domain.ParseSessionStatus(d.Status.raw)
	if err != nil {
		status = domain.SessionCancelled
	}
	return domain.Session{
		ID:          domain.SessionID(d.ID),
		Name:        d.Name,
		Description: d.Description,
		Status:      status,
		Date:        parseTime(d.Date),
		OpenedAt:    parseTime(d.OpenedAt),
		ClosedAt:    parseTime(d.ClosedAt),
	}
}

type sessionPageDTO struct {
	Items   []sessionDTO `json:"items"`
	HasMore bool         `json:"hasMore"`
}

type projectDTO struct {
	ID            string     `json:"id"`
	CreatedAt     string     `json:"criadoEm"`
	Title         string     `json:"titulo"`
	Description   string     `json:"descricao"`
	Status        flexStatus `json:"status"`
	Approved      bool       `json:"aprovado"`
	AuthorID      string     `json:"autorId"`
	AuthorName    string     `json:"autorNome"`
	AuthorSurname string     `json:"autorSobrenome"`
}

func (d projectDTO) toDomain() domain.Project {
	status, err := domain.ParseProjectStatus(d.Status.raw)
	if err != nil {
		status = domain.ProjectPresented
	}
	return domain.Project{
		ID:          domain.ProjectID(d.ID),
		Title:       d.Title,
		Description: d.Description,
		Status:      status,
		Approved:    d.Approved,
		AuthorID:    d.AuthorID,
		AuthorName:  strings.TrimSpace(d.AuthorName + " " + d.AuthorSurname),
		CreatedAt:   parseTime(d.CreatedAt),
	}
}

type voterDTO struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
}

type voteDTO struct {
	ID         string   `json:"id"`
	ApproverID *string  `json:"aprovadorId"`
	CastAt     string   `json:"dataHora"`
	Value      string   `json:"valor"`
	Confirmed  bool     `json:"votoConfirmado"`
	Voter      voterDTO `json:"vereadorVotante"`
}

func (d voteDTO) toDomain() domain.Vote {
	vote := domain.Vote{
		ID:        domain.VoteID(d.ID),
		Voter:     domain.Voter{ID: domain.VoterID(d.Voter.ID), Name: d.Voter.Name},
		Value:     domain.VoteValue(d.Value),
		CastAt:    parseTime(d.CastAt),
		Confirmed: d.Confirmed,
	}
	if d.ApproverID != nil {
		vote.ApproverID = *d.ApproverID
	}
	return vote
}

type tallyDTO struct {
	Abstain int       `json:"votosAbstencao"`
	Absent  int       `json:"votosFaltou"`
	No      int       `json:"votosNao"`
	Yes     int       `json:"votosSim"`
	Total   int       `json:"votosTotais"`
	Votes   []voteDTO `json:"votos"`
}

func (d tallyDTO) toDomain() domain.VoteTally {
	votes := make([]domain.Vote, 0, len(d.Votes))
	for _, v := range d.Votes {
		votes = append(votes, v.toDomain())
	}
	return domain.VoteTally{
		Yes:     d.Yes,
		No:      d.No,
		Abstain: d.Abstain,
		Absent:  d.Absent,
		Total:   d.Total,
		Votes:   votes,
	}
}

type currentUserDTO struct {
	ID        string `json:"id"`
	Name      string `json:"nome"`
	Email     string `json:"email"`
	President bool   `json:"presidente"`
}

type chamberDTO struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
	City string `json:"cidade"`
}

type loginResponseDTO struct {
	AccessToken     string         `json:"accessToken"`
	Expiration      string         `json:"expiration"`
	Name            string         `json:"nome"`
	President       *bool          `json:"presidente"`
	CurrentUser     currentUserDTO `json:"currentUser"`
	Chamber         chamberDTO     `json:"camaraDTO"`
	PasswordReseted bool           `json:"passwordReseted"`
}

type loginRequestDTO struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type changePasswordDTO struct {
	CurrentPassword string `json:"senhaAtual"`
	NewPassword     string `json:"novaSenha"`
	Confirmation    string `json:"confirmacaoSenha"`
}

type idDTO struct {
	ID string `json:"id"`
}

type updateProjectStatusDTO struct {
	SessionID string `json:"sessaoId"`
	ProjectID string `json:"projetoId"`
	Status    string `json:"status"`
}

type castVoteDTO struct {
	ProjectID string `json:"projetoId"`
	SessionID string `json:"sessaoId"`
	Value     string `json:"tipoVoto"`
}

type confirmVoteDTO struct {
	SessionProjectID string `json:"sessaoProjetoId"`
	VoterID          string `json:"vereadorVotanteId"`
}
