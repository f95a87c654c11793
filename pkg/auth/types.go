package auth

// Surface selects which account namespace an authentication attempt targets.
// The admin and store namespaces are disjoint: the same email may exist in
// both without the accounts being related.
type Surface string

const (
	SurfaceAdmin Surface = "admin"
	SurfaceStore Surface = "store"
)

// StrictMode names the surface whose pre-existing, non-federated accounts may
// not be silently claimed by a federated login. The zero value protects
// neither surface.
type StrictMode string

const (
	StrictNone  StrictMode = ""
	StrictAdmin StrictMode = "admin"
	StrictStore StrictMode = "store"
)

// Protects reports whether the strict mode guards the given surface.
func (m StrictMode) Protects(s Surface) bool {
	return m != StrictNone && string(m) == string(s)
}

// Metadata markers stored on accounts claimed through a federated flow.
const (
	// MetadataKeyFederated marks an account as created or claimed through
	// any federated identity flow.
	MetadataKeyFederated = "federated_auth"

	// MetadataKeyAuthProvider records exactly which provider and surface
	// claimed the account, in ProviderKey format.
	MetadataKeyAuthProvider = "auth_provider"
)

// ProviderKey builds the metadata value identifying a provider on a surface,
// e.g. "cognito.store".
func ProviderKey(provider string, surface Surface) string {
	return provider + "." + string(surface)
}

// Account is a local customer or admin identity. The account store owns the
// ID; this package only reads accounts and issues metadata updates.
type Account struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Metadata  map[string]any
}

// Federated reports whether the account carries the federated claim marker.
func (a *Account) Federated() bool {
	v, ok := a.Metadata[MetadataKeyFederated].(bool)
	return ok && v
}

// AuthProvider returns the provider key stored on the account, if any.
func (a *Account) AuthProvider() string {
	v, _ := a.Metadata[MetadataKeyAuthProvider].(string)
	return v
}

// RawProfile is the provider-native profile shape handed to a strategy by the
// route layer: a list of emails plus optional name parts.
type RawProfile struct {
	Emails     []string
	GivenName  string
	FamilyName string
}

// Profile is the canonical identity extracted from a RawProfile. It is
// transient, built once per authentication attempt and never persisted.
type Profile struct {
	Email      string
	GivenName  string
	FamilyName string
}
