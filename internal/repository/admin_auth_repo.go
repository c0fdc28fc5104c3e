package repository

import (
	"os"
)

type Owner struct {
	Email        string
	PasswordHash string
}

type AdminAuthRepository interface {
	GetByEmail(email string) (*Owner, error)
}

// adminAuthRepository reads the single owner account from the environment.
// There is no user table: the shop has exactly one owner and the bcrypt hash
// ships with the deployment config.
type adminAuthRepository struct{}

func NewAdminAuthRepository() AdminAuthRepository {
	return &adminAuthRepository{}
}

func (r *adminAuthRepository) GetByEmail(email string) (*Owner, error) {
	ownerEmail := os.Getenv("OWNER_EMAIL")
	ownerHash := os.Getenv("OWNER_PASSWORD_HASH")
	if ownerEmail == "" || ownerHash == "" || email != ownerEmail {
		return nil, nil
	}
	return &Owner{Email: ownerEmail, PasswordHash: ownerHash}, nil
}
