package cmd

import (
	"errors"

	"github.com/camaradigital/camara-cli/internal/adapters/realtime"
	"github.com/camaradigital/camara-cli/internal/domain"
)

// userMessage is what `Erro:` prints for err.
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "Você não está autenticado. Execute `camara login`."
	case errors.Is(err, domain.ErrUnauthorized):
		return "Sessão expirada. Execute `camara login` novamente."
	case errors.Is(err, domain.ErrPasswordChange):
		return "Troca de senha obrigatória. Execute `camara password change`."
	case errors.Is(err, domain.ErrNotPresident):
		return "Ação restrita ao presidente da câmara."
	case errors.Is(err, domain.ErrNoActiveSession):
		return "Nenhuma sessão em andamento."
	case errors.Is(err, domain.ErrNoProjectInVoting):
		return "Nenhum projeto em votação."
	case errors.Is(err, domain.ErrAlreadyVoted):
		return "Você já votou neste projeto."
	case errors.Is(err, domain.ErrVoteCancelled):
		return "Voto cancelado."
	case errors.Is(err, domain.ErrFinalized):
		return "O resultado deste projeto já foi registrado."
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "Informe usuário e senha."
	case errors.Is(err, domain.ErrWeakPassword):
		return "A nova senha precisa de ao menos 6 caracteres, com maiúscula, minúscula, número e caractere especial."
	case errors.Is(err, realtime.ErrFeedFailed):
		return "Conexão em tempo real perdida. Tente novamente mais tarde."
	case errors.Is(err, errOutcomeRequired):
		return "Informe --approve ou --reject."
	case errors.Is(err, errNoInput):
		return "Entrada obrigatória não informada."
	default:
		return domain.UserMessage(err)
	}
}
