package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	t.Parallel()

	plain := &Account{ID: "test", Email: "exists@test.fr"}
	claimed := &Account{ID: "test2", Metadata: map[string]any{
		MetadataKeyFederated: true,
	}}
	tagged := &Account{ID: "test3", Metadata: map[string]any{
		MetadataKeyFederated:    true,
		MetadataKeyAuthProvider: "cognito.store",
	}}
	foreign := &Account{ID: "test4", Metadata: map[string]any{
		MetadataKeyFederated:    true,
		MetadataKeyAuthProvider: "fake_provider_key",
	}}

	testCases := []struct {
		name    string
		account *Account
		surface Surface
		strict  StrictMode
		want    Action
	}{
		{"not found always creates", nil, SurfaceStore, StrictStore, ActionCreate},
		{"not found creates without strict", nil, SurfaceAdmin, StrictNone, ActionCreate},
		{"unclaimed account rejected on strict surface", plain, SurfaceStore, StrictStore, ActionReject},
		{"unclaimed account tolerated on other surface", plain, SurfaceStore, StrictAdmin, ActionAccept},
		{"unclaimed account tolerated without strict", plain, SurfaceStore, StrictNone, ActionAccept},
		{"partial claim attaches on strict surface", claimed, SurfaceStore, StrictStore, ActionAttach},
		{"partial claim attaches on other surface", claimed, SurfaceStore, StrictAdmin, ActionAttach},
		{"own provider key accepted", tagged, SurfaceStore, StrictStore, ActionAccept},
		{"own provider key accepted without strict", tagged, SurfaceStore, StrictNone, ActionAccept},
		{"foreign provider key rejected on strict surface", foreign, SurfaceStore, StrictStore, ActionReject},
		{"foreign provider key accepted on other surface", foreign, SurfaceStore, StrictAdmin, ActionAccept},
		{"store key is foreign on admin surface", tagged, SurfaceAdmin, StrictAdmin, ActionReject},
		{"store key tolerated on unprotected admin surface", tagged, SurfaceAdmin, StrictStore, ActionAccept},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Decide(tc.account, tc.surface, "cognito", tc.strict)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStrictModeProtects(t *testing.T) {
	t.Parallel()

	assert.True(t, StrictStore.Protects(SurfaceStore))
	assert.False(t, StrictStore.Protects(SurfaceAdmin))
	assert.True(t, StrictAdmin.Protects(SurfaceAdmin))
	assert.False(t, StrictNone.Protects(SurfaceStore))
	assert.False(t, StrictNone.Protects(SurfaceAdmin))
}

func TestProviderKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cognito.store", ProviderKey("cognito", SurfaceStore))
	assert.Equal(t, "cognito.admin", ProviderKey("cognito", SurfaceAdmin))
}

func TestActionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "create", ActionCreate.String())
	assert.Equal(t, "attach", ActionAttach.String())
	assert.Equal(t, "accept", ActionAccept.String())
	assert.Equal(t, "reject", ActionReject.String())
}
