// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Shabalin

package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/ashabalin/themeboard/internal/logger"
	"github.com/ashabalin/themeboard/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps an existing *sql.DB for tests.
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:     db,
		logger: logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var userColumns = []string{"user_id", "username", "email", "password_hash", "created_at"}

// ─────────────────────────────────────────────
// CreateUser
// ─────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(newDBFromSQL(db), logger.Nop())

	now := time.Now().Truncate(time.Millisecond)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "alice@example.com", "hash").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(42), "alice", "alice@example.com", "hash", now))

	created, err := repo.CreateUser(testContext(), models.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.UserID)
	assert.Equal(t, "alice", created.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "alice@example.com", "hash").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := repo.CreateUser(testContext(), models.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UnexpectedError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(assert.AnError)

	_, err := repo.CreateUser(testContext(), models.User{Username: "alice"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserAlreadyExists)
}

// ─────────────────────────────────────────────
// FindUserByUsername
// ─────────────────────────────────────────────

func TestFindUserByUsername_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(newDBFromSQL(db), logger.Nop())

	now := time.Now().Truncate(time.Millisecond)

	mock.ExpectQuery(`SELECT user_id, username, email, password_hash, created_at`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(42), "alice", "alice@example.com", "hash", now))

	found, err := repo.FindUserByUsername(testContext(), "alice")

	require.NoError(t, err)
	assert.Equal(t, int64(42), found.UserID)
	assert.Equal(t, "hash", found.PasswordHash)
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(`SELECT user_id, username, email, password_hash, created_at`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByUsername(testContext(), "ghost")

	assert.ErrorIs(t, err, ErrNoUserWasFound)
}
