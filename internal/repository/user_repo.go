package repository

import (
	"context"
	"errors"

	"github.com/EhsanEIK/rythm-bazar-server/internal/domain"
	xerrors "github.com/EhsanEIK/rythm-bazar-server/pkg/xerrors"

	"github.com/jackc/pgx/v5"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Upsert(ctx context.Context, user *domain.User) error
	List(ctx context.Context, role domain.Role) ([]domain.User, error)
	SetVerified(ctx context.Context, email string, verified bool) error
	DeleteByEmail(ctx context.Context, email string) error
}

type userRepo struct {
	store *Store
}

func NewUserRepository(store *Store) UserRepository {
	return &userRepo{store: store}
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT email, name, role, verified, COALESCE(password_hash, ''), created_at
        FROM users
        WHERE email = $1
    `

	var user domain.User
	err := r.store.q(ctx).QueryRow(ctx, query, email).Scan(
		&user.Email,
		&user.Name,
		&user.Role,
		&user.Verified,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// Upsert is the idempotent signup write: a repeat signup refreshes the name
// but never changes role or verification state.
func (r *userRepo) Upsert(ctx context.Context, user *domain.User) error {
	query := `
        INSERT INTO users (email, name, role, verified, password_hash)
        VALUES ($1, $2, $3, $4, NULLIF($5, ''))
        ON CONFLICT (email) DO UPDATE SET
            name = EXCLUDED.name,
            password_hash = COALESCE(EXCLUDED.password_hash, users.password_hash)
        RETURNING role, verified, created_at
    `

	return r.store.q(ctx).QueryRow(ctx, query,
		user.Email,
		user.Name,
		user.Role,
		user.Verified,
		user.PasswordHash,
	).Scan(&user.Role, &user.Verified, &user.CreatedAt)
}

func (r *userRepo) List(ctx context.Context, role domain.Role) ([]domain.User, error) {
	query := `
        SELECT email, name, role, verified, created_at
        FROM users
        WHERE $1 = '' OR role = $1
        ORDER BY created_at DESC
    `

	rows, err := r.store.q(ctx).Query(ctx, query, string(role))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.Email, &user.Name, &user.Role, &user.Verified, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepo) SetVerified(ctx context.Context, email string, verified bool) error {
	query := `UPDATE users SET verified = $1 WHERE email = $2`

	tag, err := r.store.q(ctx).Exec(ctx, query, verified, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrUserNotFound
	}
	return nil
}

func (r *userRepo) DeleteByEmail(ctx context.Context, email string) error {
	query := `DELETE FROM users WHERE email = $1`

	tag, err := r.store.q(ctx).Exec(ctx, query, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrUserNotFound
	}
	return nil
}
