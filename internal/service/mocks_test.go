package service

import (
	"context"
	"database/sql"

	"github.com/stretchr/testify/mock"

	"github.com/mkovac/blogd/internal/domain"
	"github.com/mkovac/blogd/internal/store"
)

// MockUserRepository mocks the store.UserRepository port.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Exists(ctx context.Context, username domain.UserName, email domain.Email) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, username domain.UserName) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) WithTx(tx *sql.Tx) store.UserRepository {
	args := m.Called(tx)
	return args.Get(0).(store.UserRepository)
}

// MockPostRepository mocks the store.PostRepository port.
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Update(ctx context.Context, post *domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Get(ctx context.Context, id domain.ID) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id domain.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) List(ctx context.Context, limit, offset int) ([]*domain.Post, int, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Post), args.Int(1), args.Error(2)
}

func (m *MockPostRepository) WithTx(tx *sql.Tx) store.PostRepository {
	args := m.Called(tx)
	return args.Get(0).(store.PostRepository)
}

// MockPasswordHasher mocks the auth.PasswordHasher capability.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(ctx context.Context, password domain.Password) (domain.PasswordHash, error) {
	args := m.Called(ctx, password)
	return args.Get(0).(domain.PasswordHash), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash domain.PasswordHash, password domain.Password) error {
	args := m.Called(hash, password)
	return args.Error(0)
}
