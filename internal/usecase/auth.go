package usecase

import (
	"context"
	"errors"

	"hotelhub/internal/domain/user"
	"hotelhub/internal/infra"
	"hotelhub/internal/infra/db"
	"hotelhub/internal/pkg/jwt"
	"hotelhub/internal/pkg/password"
	"hotelhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserValidation     = errors.New("user validation failed")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

type UserRepository interface {
	Create(ctx context.Context, q db.Queryer, u *user.User) error
	FindByEmail(ctx context.Context, email string) (*readmodel.AuthorizedUserRM, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type AuthUseCase interface {
	Register(ctx context.Context, params RegisterParams) (*readmodel.AuthorizedUserRM, error)
	Login(ctx context.Context, email, pass string) (string, *readmodel.AuthorizedUserRM, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
	pool       db.Pool
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service, pool db.Pool) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		pool:       pool,
	}
}

// Register creates an operator account. An omitted role defaults to staff.
func (a *authUseCaseImpl) Register(ctx context.Context, params RegisterParams) (*readmodel.AuthorizedUserRM, error) {
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return nil, ErrUserValidation
	}

	if _, err := user.NewPassword(params.Password); err != nil {
		return nil, ErrUserValidation
	}

	role := user.RoleStaff
	if params.Role != "" {
		role, err = user.NewRole(params.Role)
		if err != nil {
			return nil, ErrUserValidation
		}
	}

	hash, err := password.HashPassword(params.Password)
	if err != nil {
		return nil, ErrUserValidation
	}

	entity := user.NewUser(params.Name, email, hash, role)
	if err := a.userRepo.Create(ctx, a.pool, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &readmodel.AuthorizedUserRM{
		ID:    entity.ID(),
		Name:  entity.Name(),
		Email: entity.Email().Value(),
		Role:  entity.Role().String(),
	}, nil
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, pass string) (string, *readmodel.AuthorizedUserRM, error) {
	userRM, hash, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, ErrUserNotFound
		}
		return "", nil, err
	}

	if err := password.ComparePassword(hash, pass); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(userRM.Role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	token, err := a.jwtService.GenerateToken(userRM.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	if err := a.userRepo.UpdateLastLogin(ctx, userRM.ID); err != nil {
		return "", nil, err
	}

	return token, userRM, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	userRM, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return userRM, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.UserID, role, nil
}
