package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mkovac/blogd/internal/domain"
	"github.com/mkovac/blogd/internal/service/auth"
	"github.com/mkovac/blogd/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, dbMock
}

func validRegisterCommand() RegisterUserCommand {
	return RegisterUserCommand{
		Username: "alice01",
		Password: "Abc123!&",
		Email:    "alice@example.com",
	}
}

func TestRegisterUser(t *testing.T) {
	db, dbMock := newTestDB(t)
	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	users := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	users.On("WithTx", mock.Anything).Return(users)
	users.On("Exists", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	hasher.On("Hash", mock.Anything, mock.Anything).
		Return(domain.NewPasswordHash("hashed"), nil)

	svc := NewUserService(users, hasher, db, testLogger())
	user, err := svc.RegisterUser(context.Background(), validRegisterCommand())

	require.NoError(t, err)
	assert.False(t, user.ID().IsZero())
	assert.Equal(t, "alice01", user.Username().String())
	assert.Equal(t, "alice@example.com", user.Email().String())
	assert.Equal(t, "hashed", user.PasswordHash().Value())
	users.AssertExpectations(t)
	hasher.AssertExpectations(t)
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestRegisterUserInvalidInput(t *testing.T) {
	db, _ := newTestDB(t)
	users := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	svc := NewUserService(users, hasher, db, testLogger())

	cases := []struct {
		name string
		cmd  RegisterUserCommand
	}{
		{"short username", RegisterUserCommand{Username: "al", Password: "Abc123!&", Email: "a@b.com"}},
		{"bad email", RegisterUserCommand{Username: "alice01", Password: "Abc123!&", Email: "nope"}},
		{"weak password", RegisterUserCommand{Username: "alice01", Password: "password", Email: "a@b.com"}},
		{"empty password", RegisterUserCommand{Username: "alice01", Password: "", Email: "a@b.com"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tc.cmd)
			assert.ErrorIs(t, err, ErrInvalidUser)
		})
	}

	// No repository or hasher call for invalid input.
	users.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	hasher.AssertNotCalled(t, "Hash", mock.Anything, mock.Anything)
}

func TestRegisterUserDuplicate(t *testing.T) {
	db, dbMock := newTestDB(t)
	dbMock.ExpectBegin()
	dbMock.ExpectRollback()

	users := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	users.On("WithTx", mock.Anything).Return(users)
	users.On("Exists", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	hasher.On("Hash", mock.Anything, mock.Anything).
		Return(domain.NewPasswordHash("hashed"), nil)

	svc := NewUserService(users, hasher, db, testLogger())
	_, err := svc.RegisterUser(context.Background(), validRegisterCommand())

	assert.ErrorIs(t, err, ErrUsernameOrEmailExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestRegisterUserLosesInsertRace(t *testing.T) {
	db, dbMock := newTestDB(t)
	dbMock.ExpectBegin()
	dbMock.ExpectRollback()

	users := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	users.On("WithTx", mock.Anything).Return(users)
	users.On("Exists", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	// The check passed but a concurrent insert won the race; the unique
	// constraint rejects ours.
	users.On("Create", mock.Anything, mock.Anything).Return(store.ErrUsernameOrEmailExists)
	hasher.On("Hash", mock.Anything, mock.Anything).
		Return(domain.NewPasswordHash("hashed"), nil)

	svc := NewUserService(users, hasher, db, testLogger())
	_, err := svc.RegisterUser(context.Background(), validRegisterCommand())

	assert.ErrorIs(t, err, ErrUsernameOrEmailExists)
}

func TestRegisterUserHasherFailure(t *testing.T) {
	db, _ := newTestDB(t)
	users := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	hasher.On("Hash", mock.Anything, mock.Anything).
		Return(domain.PasswordHash{}, errors.New("hashing backend down"))

	svc := NewUserService(users, hasher, db, testLogger())
	_, err := svc.RegisterUser(context.Background(), validRegisterCommand())

	assert.ErrorIs(t, err, ErrUnexpected)
	assert.Contains(t, err.Error(), "hashing backend down")
}

func TestRegisterUserPasswordTooLongForHasher(t *testing.T) {
	db, _ := newTestDB(t)
	users := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	hasher.On("Hash", mock.Anything, mock.Anything).
		Return(domain.PasswordHash{}, auth.ErrPasswordTooLong)

	svc := NewUserService(users, hasher, db, testLogger())
	_, err := svc.RegisterUser(context.Background(), validRegisterCommand())

	// An input-length rejection is a validation failure, not an
	// infrastructure one.
	assert.ErrorIs(t, err, ErrInvalidUser)
	assert.NotErrorIs(t, err, ErrUnexpected)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVerifyUser(t *testing.T) {
	db, _ := newTestDB(t)
	username, err := domain.NewUserName("alice01")
	require.NoError(t, err)
	stored := domain.RestoreUser(
		domain.NewID(), "alice01", "alice@example.com", "hashed", time.Now().UTC(),
	)

	users := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	users.On("Get", mock.Anything, username).Return(stored, nil)
	hasher.On("Compare", stored.PasswordHash(), mock.Anything).Return(nil)

	svc := NewUserService(users, hasher, db, testLogger())
	user, err := svc.VerifyUser(context.Background(), VerifyUserCommand{
		Username: "alice01",
		Password: "Abc123!&",
	})

	require.NoError(t, err)
	assert.Equal(t, stored.ID(), user.ID())
}

func TestVerifyUserWrongPassword(t *testing.T) {
	db, _ := newTestDB(t)
	username, err := domain.NewUserName("alice01")
	require.NoError(t, err)
	stored := domain.RestoreUser(
		domain.NewID(), "alice01", "alice@example.com", "hashed", time.Now().UTC(),
	)

	users := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	users.On("Get", mock.Anything, username).Return(stored, nil)
	hasher.On("Compare", mock.Anything, mock.Anything).Return(auth.ErrPasswordMismatch)

	svc := NewUserService(users, hasher, db, testLogger())
	_, err = svc.VerifyUser(context.Background(), VerifyUserCommand{
		Username: "alice01",
		Password: "Abc123!&",
	})

	assert.ErrorIs(t, err, ErrInvalidUserNameOrPassword)
}

func TestVerifyUserNotFound(t *testing.T) {
	db, _ := newTestDB(t)
	users := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	users.On("Get", mock.Anything, mock.Anything).Return(nil, store.ErrUserNotFound)

	svc := NewUserService(users, hasher, db, testLogger())
	_, err := svc.VerifyUser(context.Background(), VerifyUserCommand{
		Username: "ghost01",
		Password: "Abc123!&",
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestVerifyUserMalformedInput(t *testing.T) {
	db, _ := newTestDB(t)
	users := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	svc := NewUserService(users, hasher, db, testLogger())

	// Malformed input and wrong credentials share one error kind.
	_, err := svc.VerifyUser(context.Background(), VerifyUserCommand{
		Username: "al",
		Password: "Abc123!&",
	})
	assert.ErrorIs(t, err, ErrInvalidUserNameOrPassword)

	_, err = svc.VerifyUser(context.Background(), VerifyUserCommand{
		Username: "alice01",
		Password: "short",
	})
	assert.ErrorIs(t, err, ErrInvalidUserNameOrPassword)

	users.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
