package usecase

import (
	"context"
	"errors"

	"github.com/EhsanEIK/rythm-bazar-server/internal/repository"
	"github.com/EhsanEIK/rythm-bazar-server/pkg/jwtutil"
	xerrors "github.com/EhsanEIK/rythm-bazar-server/pkg/xerrors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase struct {
	users  repository.UserRepository
	signer *jwtutil.Signer
	logger *zap.Logger
}

func NewAuthUsecase(users repository.UserRepository, signer *jwtutil.Signer, logger *zap.Logger) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		signer: signer,
		logger: logger,
	}
}

// IssueToken mints a credential for an established account. Claims are built
// server-side from the stored identity; whatever else the caller sent is
// discarded. Accounts registered with a password must present it, accounts
// created through social sign-in have no hash and skip the check.
func (uc *AuthUsecase) IssueToken(ctx context.Context, email, password string) (string, error) {
	if email == "" {
		return "", xerrors.ErrEmailRequired
	}

	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, xerrors.ErrUserNotFound) {
			uc.logger.Warn("token requested for unknown account", zap.String("email", email))
			return "", xerrors.ErrInvalidCredentials
		}
		return "", err
	}

	if user.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			return "", xerrors.ErrInvalidCredentials
		}
	}

	token, err := uc.signer.Sign(user.Email)
	if err != nil {
		return "", err
	}

	return token, nil
}
