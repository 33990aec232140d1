package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/LakshyaxGupta/FlowBreak/internal/entity"
	uuid2 "github.com/gofrs/uuid"
	"github.com/google/uuid"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetOrCreate(ctx context.Context, email string) (*entity.User, error)
}

type userRepository struct {
	db Querier
}

func NewUserRepository(db Querier) UserRepository {
	return &userRepository{db: db}
}

// GetByEmail returns nil, nil when no user has that email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	query := r.db.Rebind(`SELECT id, email, created_at FROM users WHERE email = ?`)

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) GetOrCreate(ctx context.Context, email string) (*entity.User, error) {
	query := r.db.Rebind(`
		INSERT INTO users (id, email, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (email) DO NOTHING`)

	_, err := r.db.ExecContext(ctx, query, uuid2.UUID(uuid.New()), email, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	user, err := r.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, sql.ErrNoRows
	}

	return user, nil
}
