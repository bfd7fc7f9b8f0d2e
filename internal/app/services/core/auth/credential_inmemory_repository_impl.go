package auth

import (
	"context"
	"log"
	"medrecord-service/internal/app/config"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/utils"
)

// CredentialInMemoryRepository holds the placeholder credential table: a single
// static record seeded from config, read-only after startup.
type CredentialInMemoryRepository struct {
	users map[string]*models.User
}

func NewCredentialInMemoryRepository(internalConfig *config.InternalConfig) CredentialRepository {
	passwordHash, err := utils.HashPassword(internalConfig.Auth.Password)
	if err != nil {
		log.Fatalf("Failed to hash static credential password: %s", err.Error())
	}
	return &CredentialInMemoryRepository{
		users: map[string]*models.User{
			internalConfig.Auth.Username: {
				Username:     internalConfig.Auth.Username,
				PasswordHash: passwordHash,
			},
		},
	}
}

func (r *CredentialInMemoryRepository) VerifyCredentials(ctx context.Context, username, password string) (*models.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, nil
	}
	return user, nil
}

func (r *CredentialInMemoryRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return user, nil
}
