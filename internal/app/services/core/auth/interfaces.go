package auth

import (
	"context"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	IssueToken(ctx context.Context, request *requests.Token) (*responses.Token, error)
	ResolveToken(ctx context.Context, token string) (*models.User, error)
}

// CredentialRepository is the injected credential-lookup capability shared by
// token issuance and the bearer middleware. Swapping the in-memory impl for a
// real identity provider leaves the route logic untouched.
type CredentialRepository interface {
	VerifyCredentials(ctx context.Context, username, password string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}
