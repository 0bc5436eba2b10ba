package repository

import (
	"context"

	"hotelhub/internal/domain/user"
	"hotelhub/internal/infra"
	"hotelhub/internal/infra/db"
	"hotelhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.Queryer
}

func NewUserRepository(q db.Queryer) *UserRepository {
	return &UserRepository{db: q}
}

func (r *UserRepository) Create(ctx context.Context, q db.Queryer, u *user.User) error {
	const query = `
		INSERT INTO users (id, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := q.Exec(ctx, query, u.ID(), u.Name(), u.Email().Value(), u.PasswordHash(), u.Role().String())
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

// FindByEmail returns the read model together with the stored password hash;
// the hash never leaves the auth usecase.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*readmodel.AuthorizedUserRM, string, error) {
	const query = `
		SELECT id, name, email, password_hash, role, last_login, created_at
		FROM users
		WHERE email = $1`

	var (
		rm   readmodel.AuthorizedUserRM
		hash string
	)
	err := r.db.QueryRow(ctx, query, email).Scan(
		&rm.ID, &rm.Name, &rm.Email, &hash, &rm.Role, &rm.LastLogin, &rm.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &rm, hash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	const query = `
		SELECT id, name, email, role, last_login, created_at
		FROM users
		WHERE id = $1`

	var rm readmodel.AuthorizedUserRM
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rm.ID, &rm.Name, &rm.Email, &rm.Role, &rm.LastLogin, &rm.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &rm, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
