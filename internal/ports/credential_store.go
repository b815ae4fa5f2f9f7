package ports

import (
	"context"

	"github.com/camaradigital/camara-cli/internal/domain"
)

// CredentialStore persists the signed-in identity. Clear removes every
// persisted item together.
type CredentialStore interface {
	Load(ctx context.Context) (domain.Credentials, error)
	Save(ctx context.Context, creds domain.Credentials) error
	Clear(ctx context.Context) error
}
