package authroutes

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"

	"github.com/commercekit/authbridge/pkg/auth"
	"github.com/commercekit/authbridge/pkg/cognito"
)

// MockProvider is a mock implementation of identityProvider.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) GetUserByAccessToken(ctx context.Context, accessToken string) (cognito.User, error) {
	args := m.Called(ctx, accessToken)
	return args.Get(0).(cognito.User), args.Error(1)
}

func (m *MockProvider) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

// MockHostedUI is a mock implementation of hostedUI.
type MockHostedUI struct {
	mock.Mock
}

func (m *MockHostedUI) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *MockHostedUI) Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

// MockSessions is a mock implementation of the sessions capability.
type MockSessions struct {
	mock.Mock
}

func (m *MockSessions) StoreState(ctx context.Context, state string, ttl time.Duration) error {
	args := m.Called(ctx, state, ttl)
	return args.Error(0)
}

func (m *MockSessions) ConsumeState(ctx context.Context, state string) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockSessions) CreateSession(ctx context.Context, surface auth.Surface, accountID string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, surface, accountID, ttl)
	return args.String(0), args.Error(1)
}

// memoryStore is a minimal in-memory account store for wiring a real registry
// through the router under test.
type memoryStore struct {
	accounts map[string]*auth.Account
	created  int
	updated  int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{accounts: make(map[string]*auth.Account)}
}

func (s *memoryStore) FindByEmail(_ context.Context, email string, _ auth.Surface) (*auth.Account, error) {
	account, ok := s.accounts[email]
	if !ok {
		return nil, auth.ErrAccountNotFound
	}
	return account, nil
}

func (s *memoryStore) Create(_ context.Context, account *auth.Account, _ auth.Surface) (*auth.Account, error) {
	s.created++
	created := *account
	created.ID = "generated"
	s.accounts[account.Email] = &created
	return &created, nil
}

func (s *memoryStore) UpdateMetadata(_ context.Context, id string, patch map[string]any, _ auth.Surface) (*auth.Account, error) {
	s.updated++
	for _, account := range s.accounts {
		if account.ID == id {
			if account.Metadata == nil {
				account.Metadata = make(map[string]any)
			}
			for k, v := range patch {
				account.Metadata[k] = v
			}
			return account, nil
		}
	}
	return nil, auth.ErrAccountNotFound
}

func (s *memoryStore) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
