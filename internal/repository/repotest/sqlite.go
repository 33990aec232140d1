// Package repotest opens throwaway sqlite databases with the schema applied.
package repotest

import (
	"testing"

	"github.com/LakshyaxGupta/FlowBreak/migrations"
	"github.com/jmoiron/sqlx"

	_ "modernc.org/sqlite"
)

func NewDB(t testing.TB) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	stmts, err := migrations.UpStatements("sqlite")
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("apply migration: %v", err)
		}
	}

	return db
}
