package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/LakshyaxGupta/FlowBreak/config"
	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Querier is satisfied by both *sqlx.DB and *sqlx.Tx.
type Querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

func NewRepository(cfg config.DatabaseConfig, logger *slog.Logger) (*sqlx.DB, error) {
	db, err := sqlx.Connect(cfg.Driver, cfg.DSN())
	if err != nil {
		logger.Error("error connecting to database", slog.String("driver", cfg.Driver), slog.Any("error", err))
		return nil, err
	}

	if err := db.Ping(); err != nil {
		logger.Error("error pinging database", slog.Any("error", err))
		return nil, err
	}

	if cfg.Driver == "sqlite" {
		// sqlite allows one writer; :memory: databases also live on one connection
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	logger.Info("connected to database", slog.String("driver", cfg.Driver))

	return db, nil
}

// WithTx runs fn inside a transaction, committing when fn returns nil and
// rolling back otherwise.
func WithTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

type Repositories struct {
	Users    UserRepository
	Sessions SessionRepository
	Events   EventRepository
}

func newRepositories(q Querier) Repositories {
	return Repositories{
		Users:    NewUserRepository(q),
		Sessions: NewSessionRepository(q),
		Events:   NewEventRepository(q),
	}
}

// Store hands out repositories bound either to the pool or to a single
// transaction.
type Store interface {
	Repositories() Repositories
	InTx(ctx context.Context, fn func(repos Repositories) error) error
}

type store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) Store {
	return &store{db: db}
}

func (s *store) Repositories() Repositories {
	return newRepositories(s.db)
}

func (s *store) InTx(ctx context.Context, fn func(repos Repositories) error) error {
	return WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		return fn(newRepositories(tx))
	})
}
