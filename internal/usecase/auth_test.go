//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotelhub/internal/domain/user"
	"hotelhub/internal/infra"
	"hotelhub/internal/infra/db"
	"hotelhub/internal/pkg/jwt"
	"hotelhub/internal/pkg/password"
	"hotelhub/internal/usecase"
	"hotelhub/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	create          func(u *user.User) error
	findByEmail     func(email string) (*readmodel.AuthorizedUserRM, string, error)
	findByID        func(id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	lastLoginStored []uuid.UUID
}

func (f *fakeUserRepo) Create(_ context.Context, _ db.Queryer, u *user.User) error {
	return f.create(u)
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*readmodel.AuthorizedUserRM, string, error) {
	return f.findByEmail(email)
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	return f.findByID(id)
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, id uuid.UUID) error {
	f.lastLoginStored = append(f.lastLoginStored, id)
	return nil
}

func newJWTService() *jwt.Service {
	return jwt.NewService("test-secret", time.Hour)
}

func TestRegister(t *testing.T) {
	t.Run("defaults to the staff role", func(t *testing.T) {
		var stored *user.User
		repo := &fakeUserRepo{create: func(u *user.User) error {
			stored = u
			return nil
		}}
		uc := usecase.NewAuthUseCase(repo, newJWTService(), fakePool{})

		rm, err := uc.Register(context.Background(), usecase.RegisterParams{
			Name:     "Front Desk",
			Email:    "desk@example.com",
			Password: "letmein-please",
		})
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "staff", rm.Role)
		assert.Equal(t, user.RoleStaff, stored.Role())
		assert.NoError(t, password.ComparePassword(stored.PasswordHash(), "letmein-please"))
	})

	t.Run("honours an explicit admin role", func(t *testing.T) {
		repo := &fakeUserRepo{create: func(*user.User) error { return nil }}
		uc := usecase.NewAuthUseCase(repo, newJWTService(), fakePool{})

		rm, err := uc.Register(context.Background(), usecase.RegisterParams{
			Name:     "Manager",
			Email:    "manager@example.com",
			Password: "letmein-please",
			Role:     "admin",
		})
		require.NoError(t, err)
		assert.Equal(t, "admin", rm.Role)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := &fakeUserRepo{create: func(*user.User) error {
			return infra.WrapRepoErr("dup", errors.New("unique"), infra.KindDuplicateKey)
		}}
		uc := usecase.NewAuthUseCase(repo, newJWTService(), fakePool{})

		_, err := uc.Register(context.Background(), usecase.RegisterParams{
			Name:     "Front Desk",
			Email:    "desk@example.com",
			Password: "letmein-please",
		})
		assert.ErrorIs(t, err, usecase.ErrEmailTaken)
	})

	tests := []struct {
		name   string
		params usecase.RegisterParams
	}{
		{name: "invalid email", params: usecase.RegisterParams{Name: "X", Email: "nope", Password: "letmein-please"}},
		{name: "short password", params: usecase.RegisterParams{Name: "X", Email: "x@example.com", Password: "short"}},
		{name: "unknown role", params: usecase.RegisterParams{Name: "X", Email: "x@example.com", Password: "letmein-please", Role: "owner"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.NewAuthUseCase(&fakeUserRepo{}, newJWTService(), fakePool{})
			_, err := uc.Register(context.Background(), tt.params)
			assert.ErrorIs(t, err, usecase.ErrUserValidation)
		})
	}
}

func TestLogin(t *testing.T) {
	userID := uuid.New()
	hash, err := password.HashPassword("letmein-please")
	require.NoError(t, err)

	storedUser := &readmodel.AuthorizedUserRM{
		ID:    userID,
		Name:  "Front Desk",
		Email: "desk@example.com",
		Role:  "staff",
	}

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		repo := &fakeUserRepo{findByEmail: func(string) (*readmodel.AuthorizedUserRM, string, error) {
			return storedUser, hash, nil
		}}
		svc := newJWTService()
		uc := usecase.NewAuthUseCase(repo, svc, fakePool{})

		token, rm, err := uc.Login(context.Background(), "desk@example.com", "letmein-please")
		require.NoError(t, err)
		assert.Equal(t, storedUser, rm)
		assert.Equal(t, []uuid.UUID{userID}, repo.lastLoginStored)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "staff", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := &fakeUserRepo{findByEmail: func(string) (*readmodel.AuthorizedUserRM, string, error) {
			return storedUser, hash, nil
		}}
		uc := usecase.NewAuthUseCase(repo, newJWTService(), fakePool{})

		_, _, err := uc.Login(context.Background(), "desk@example.com", "wrong-password")
		assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
		assert.Empty(t, repo.lastLoginStored)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := &fakeUserRepo{findByEmail: func(string) (*readmodel.AuthorizedUserRM, string, error) {
			return nil, "", notFoundErr()
		}}
		uc := usecase.NewAuthUseCase(repo, newJWTService(), fakePool{})

		_, _, err := uc.Login(context.Background(), "ghost@example.com", "letmein-please")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestValidateToken(t *testing.T) {
	userID := uuid.New()
	svc := newJWTService()

	token, err := svc.GenerateToken(userID, user.RoleAdmin)
	require.NoError(t, err)

	uc := usecase.NewAuthUseCase(&fakeUserRepo{}, svc, fakePool{})

	t.Run("round trip", func(t *testing.T) {
		gotID, gotRole, err := uc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, gotID)
		assert.Equal(t, user.RoleAdmin, gotRole)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, _, err := uc.ValidateToken("not.a.token")
		assert.Error(t, err)
	})
}
