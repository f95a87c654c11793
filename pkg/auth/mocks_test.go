package auth

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) FindByEmail(ctx context.Context, email string, surface Surface) (*Account, error) {
	args := m.Called(ctx, email, surface)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Account), args.Error(1)
}

func (m *MockStore) Create(ctx context.Context, account *Account, surface Surface) (*Account, error) {
	args := m.Called(ctx, account, surface)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Account), args.Error(1)
}

func (m *MockStore) UpdateMetadata(ctx context.Context, id string, patch map[string]any, surface Surface) (*Account, error) {
	args := m.Called(ctx, id, patch, surface)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Account), args.Error(1)
}

// RunInTransaction executes fn inline after recording the call, mirroring a
// commit-or-rollback scope without a real database.
func (m *MockStore) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}
