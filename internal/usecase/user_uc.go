package usecase

import (
	"context"
	"errors"

	"github.com/EhsanEIK/rythm-bazar-server/internal/domain"
	"github.com/EhsanEIK/rythm-bazar-server/internal/repository"
	xerrors "github.com/EhsanEIK/rythm-bazar-server/pkg/xerrors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserUsecase struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func NewUserUsecase(users repository.UserRepository, logger *zap.Logger) *UserUsecase {
	return &UserUsecase{
		users:  users,
		logger: logger,
	}
}

// Signup upserts an account by email. Admin is never self-assignable; the
// open signup route only hands out seller and buyer.
func (uc *UserUsecase) Signup(ctx context.Context, email, name string, role domain.Role, password string) (*domain.User, error) {
	if email == "" {
		return nil, xerrors.ErrEmailRequired
	}
	if role == "" {
		role = domain.RoleBuyer
	}
	if role != domain.RoleSeller && role != domain.RoleBuyer {
		return nil, xerrors.ErrInvalidRole
	}

	user := &domain.User{
		Email: email,
		Name:  name,
		Role:  role,
	}

	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := uc.users.Upsert(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("user signed up",
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)))

	return user, nil
}

func (uc *UserUsecase) List(ctx context.Context, role domain.Role) ([]domain.User, error) {
	if role != "" && !role.Valid() {
		return nil, xerrors.ErrInvalidRole
	}
	return uc.users.List(ctx, role)
}

func (uc *UserUsecase) Delete(ctx context.Context, email string) error {
	return uc.users.DeleteByEmail(ctx, email)
}

func (uc *UserUsecase) VerifySeller(ctx context.Context, email string) error {
	return uc.users.SetVerified(ctx, email, true)
}

// HasRole backs the unauthenticated role-flag endpoints. Display-only on the
// client; the authorizing middleware never consults it.
func (uc *UserUsecase) HasRole(ctx context.Context, email string, role domain.Role) (bool, error) {
	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, xerrors.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.Role == role, nil
}
