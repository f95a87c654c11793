package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fixtureStore seeds the four account states the ownership policy
// distinguishes, keyed by email the way the upstream account service would
// resolve them.
func fixtureStore(t *testing.T, surface Surface) *MockStore {
	t.Helper()

	store := &MockStore{}
	store.On("RunInTransaction", mock.Anything).Return(nil).Maybe()
	store.On("FindByEmail", mock.Anything, "exists@test.fr", surface).
		Return(&Account{ID: "test", Email: "exists@test.fr"}, nil).Maybe()
	store.On("FindByEmail", mock.Anything, "exist2s@test.fr", surface).
		Return(&Account{ID: "test2", Email: "exist2s@test.fr", Metadata: map[string]any{
			MetadataKeyFederated: true,
		}}, nil).Maybe()
	store.On("FindByEmail", mock.Anything, "exist3s@test.fr", surface).
		Return(&Account{ID: "test3", Email: "exist3s@test.fr", Metadata: map[string]any{
			MetadataKeyFederated:    true,
			MetadataKeyAuthProvider: "cognito.store",
		}}, nil).Maybe()
	store.On("FindByEmail", mock.Anything, "exist4s@test.fr", surface).
		Return(&Account{ID: "test4", Email: "exist4s@test.fr", Metadata: map[string]any{
			MetadataKeyFederated:    true,
			MetadataKeyAuthProvider: "fake_provider_key",
		}}, nil).Maybe()
	store.On("FindByEmail", mock.Anything, mock.AnythingOfType("string"), surface).
		Return(nil, ErrAccountNotFound).Maybe()
	return store
}

func storeStrategy(store *MockStore, strict StrictMode) *Strategy {
	rec := NewReconciler(store, "cognito", SurfaceStore, WithStrictMode(strict))
	return NewStrategy("cognito", SurfaceStore, rec)
}

func TestStrategyValidate_StrictStore(t *testing.T) {
	t.Parallel()

	t.Run("fails when the customer exists without the metadata", func(t *testing.T) {
		t.Parallel()

		store := fixtureStore(t, SurfaceStore)
		strategy := storeStrategy(store, StrictStore)

		res, err := strategy.Validate(context.Background(), nil, "token", "", RawProfile{
			Emails: []string{"exists@test.fr"},
		}, nil)

		require.Error(t, err)
		assert.Nil(t, res)
		assert.EqualError(t, err, "Customer with email exists@test.fr already exists")
	})

	t.Run("updates metadata when only the federated marker is present", func(t *testing.T) {
		t.Parallel()

		store := fixtureStore(t, SurfaceStore)
		store.On("UpdateMetadata", mock.Anything, "test2", mock.Anything, SurfaceStore).
			Return(&Account{ID: "test2"}, nil)
		strategy := storeStrategy(store, StrictStore)

		res, err := strategy.Validate(context.Background(), nil, "token", "", RawProfile{
			Emails: []string{"exist2s@test.fr"},
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, "test2", res.ID)
		store.AssertNumberOfCalls(t, "UpdateMetadata", 1)
	})

	t.Run("succeeds with own provider key and no mutation", func(t *testing.T) {
		t.Parallel()

		store := fixtureStore(t, SurfaceStore)
		strategy := storeStrategy(store, StrictStore)

		res, err := strategy.Validate(context.Background(), nil, "token", "", RawProfile{
			Emails: []string{"exist3s@test.fr"},
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, "test3", res.ID)
		store.AssertNotCalled(t, "Create")
		store.AssertNotCalled(t, "UpdateMetadata")
	})

	t.Run("fails when the provider key belongs to another provider", func(t *testing.T) {
		t.Parallel()

		store := fixtureStore(t, SurfaceStore)
		strategy := storeStrategy(store, StrictStore)

		res, err := strategy.Validate(context.Background(), nil, "token", "", RawProfile{
			Emails: []string{"exist4s@test.fr"},
		}, nil)

		require.Error(t, err)
		assert.Nil(t, res)
		assert.EqualError(t, err, "Customer with email exist4s@test.fr already exists")
	})

	t.Run("creates a new customer when none is found", func(t *testing.T) {
		t.Parallel()

		store := fixtureStore(t, SurfaceStore)
		store.On("Create", mock.Anything, mock.MatchedBy(func(a *Account) bool {
			return a.Email == "fake@test.fr" && a.FirstName == "test" && a.LastName == "test"
		}), SurfaceStore).Return(&Account{ID: "test"}, nil)
		strategy := storeStrategy(store, StrictStore)

		res, err := strategy.Validate(context.Background(), nil, "token", "", RawProfile{
			Emails:     []string{"fake@test.fr"},
			GivenName:  "test",
			FamilyName: "test",
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, "test", res.ID)
		store.AssertNumberOfCalls(t, "Create", 1)
	})
}

func TestStrategyValidate_StrictAdmin(t *testing.T) {
	t.Parallel()

	t.Run("succeeds when the customer exists without the metadata", func(t *testing.T) {
		t.Parallel()

		store := fixtureStore(t, SurfaceStore)
		strategy := storeStrategy(store, StrictAdmin)

		res, err := strategy.Validate(context.Background(), nil, "token", "", RawProfile{
			Emails: []string{"exists@test.fr"},
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, "test", res.ID)
		store.AssertNotCalled(t, "UpdateMetadata")
	})

	t.Run("updates metadata when only the federated marker is present", func(t *testing.T) {
		t.Parallel()

		store := fixtureStore(t, SurfaceStore)
		store.On("UpdateMetadata", mock.Anything, "test2", mock.Anything, SurfaceStore).
			Return(&Account{ID: "test2"}, nil)
		strategy := storeStrategy(store, StrictAdmin)

		res, err := strategy.Validate(context.Background(), nil, "token", "", RawProfile{
			Emails: []string{"exist2s@test.fr"},
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, "test2", res.ID)
		store.AssertNumberOfCalls(t, "UpdateMetadata", 1)
	})

	t.Run("succeeds when the provider key belongs to another provider", func(t *testing.T) {
		t.Parallel()

		store := fixtureStore(t, SurfaceStore)
		strategy := storeStrategy(store, StrictAdmin)

		res, err := strategy.Validate(context.Background(), nil, "token", "", RawProfile{
			Emails: []string{"exist4s@test.fr"},
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, "test4", res.ID)
		store.AssertNotCalled(t, "UpdateMetadata")
	})

	t.Run("creates a new customer when none is found", func(t *testing.T) {
		t.Parallel()

		store := fixtureStore(t, SurfaceStore)
		store.On("Create", mock.Anything, mock.Anything, SurfaceStore).Return(&Account{ID: "test"}, nil)
		strategy := storeStrategy(store, StrictAdmin)

		res, err := strategy.Validate(context.Background(), nil, "token", "", RawProfile{
			Emails:     []string{"fake@test.fr"},
			GivenName:  "test",
			FamilyName: "test",
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, "test", res.ID)
		store.AssertNumberOfCalls(t, "Create", 1)
	})
}

func TestStrategyValidate_AccessToken(t *testing.T) {
	t.Parallel()

	t.Run("attaches the original access token to the result", func(t *testing.T) {
		t.Parallel()

		store := fixtureStore(t, SurfaceStore)
		strategy := storeStrategy(store, StrictAdmin)

		res, err := strategy.Validate(context.Background(), nil, "the-access-token", "refresh", RawProfile{
			Emails: []string{"exist3s@test.fr"},
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, "the-access-token", res.AccessToken)
		assert.Equal(t, "test3", res.ID)
	})
}

func TestStrategyValidate_CustomVerify(t *testing.T) {
	t.Parallel()

	t.Run("custom verify callback replaces the default pipeline", func(t *testing.T) {
		t.Parallel()

		store := &MockStore{}
		rec := NewReconciler(store, "cognito", SurfaceStore)
		called := false

		strategy := NewStrategy("cognito", SurfaceStore, rec, WithVerify(
			func(ctx context.Context, req *http.Request, accessToken, refreshToken string, raw RawProfile, extra map[string]string) (*Account, error) {
				called = true
				assert.Equal(t, "token", accessToken)
				return &Account{ID: "custom"}, nil
			},
		))

		res, err := strategy.Validate(context.Background(), nil, "token", "", RawProfile{
			Emails: []string{"exists@test.fr"},
		}, nil)

		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "custom", res.ID)
		assert.Equal(t, "token", res.AccessToken)
		store.AssertNotCalled(t, "FindByEmail")
		store.AssertNotCalled(t, "RunInTransaction")
	})

	t.Run("custom verify errors propagate unchanged", func(t *testing.T) {
		t.Parallel()

		store := &MockStore{}
		rec := NewReconciler(store, "cognito", SurfaceStore)
		verifyErr := errors.New("verify failed")

		strategy := NewStrategy("cognito", SurfaceStore, rec, WithVerify(
			func(ctx context.Context, req *http.Request, accessToken, refreshToken string, raw RawProfile, extra map[string]string) (*Account, error) {
				return nil, verifyErr
			},
		))

		res, err := strategy.Validate(context.Background(), nil, "token", "", RawProfile{}, nil)

		assert.Equal(t, verifyErr, err)
		assert.Nil(t, res)
	})
}

func TestStrategyValidate_MissingEmail(t *testing.T) {
	t.Parallel()

	store := &MockStore{}
	rec := NewReconciler(store, "cognito", SurfaceStore)
	strategy := NewStrategy("cognito", SurfaceStore, rec)

	res, err := strategy.Validate(context.Background(), nil, "token", "", RawProfile{}, nil)

	assert.ErrorIs(t, err, ErrMissingEmail)
	assert.Nil(t, res)
	store.AssertNotCalled(t, "RunInTransaction")
}

func TestNormalizeProfile(t *testing.T) {
	t.Parallel()

	t.Run("takes the first email and lowercases it", func(t *testing.T) {
		t.Parallel()

		profile, err := NormalizeProfile(RawProfile{
			Emails:     []string{" Someone@Test.FR ", "second@test.fr"},
			GivenName:  "Some",
			FamilyName: "One",
		})

		require.NoError(t, err)
		assert.Equal(t, "someone@test.fr", profile.Email)
		assert.Equal(t, "Some", profile.GivenName)
		assert.Equal(t, "One", profile.FamilyName)
	})

	t.Run("rejects an empty email list", func(t *testing.T) {
		t.Parallel()

		_, err := NormalizeProfile(RawProfile{})
		assert.ErrorIs(t, err, ErrMissingEmail)
	})
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	store := &MockStore{}
	storeRec := NewReconciler(store, "cognito", SurfaceStore)
	adminRec := NewReconciler(store, "cognito", SurfaceAdmin)

	registry := NewRegistry(
		NewStrategy("cognito", SurfaceStore, storeRec),
		NewStrategy("cognito", SurfaceAdmin, adminRec),
	)

	t.Run("resolves strategies by provider and surface", func(t *testing.T) {
		t.Parallel()

		s, err := registry.Get("cognito", SurfaceStore)
		require.NoError(t, err)
		assert.Equal(t, SurfaceStore, s.Surface())

		s, err = registry.Get("cognito", SurfaceAdmin)
		require.NoError(t, err)
		assert.Equal(t, SurfaceAdmin, s.Surface())
	})

	t.Run("unknown provider returns ErrUnknownStrategy", func(t *testing.T) {
		t.Parallel()

		_, err := registry.Get("auth0", SurfaceStore)
		assert.ErrorIs(t, err, ErrUnknownStrategy)
	})

	t.Run("duplicate registration panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			NewRegistry(
				NewStrategy("cognito", SurfaceStore, storeRec),
				NewStrategy("cognito", SurfaceStore, storeRec),
			)
		})
	})
}
