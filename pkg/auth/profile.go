package auth

import "strings"

// NormalizeProfile reduces a provider-native profile to the canonical form.
// The first email in the provider's list is taken as canonical; callers must
// guarantee at least one email is present, an empty list is rejected with
// ErrMissingEmail.
func NormalizeProfile(raw RawProfile) (Profile, error) {
	if len(raw.Emails) == 0 || raw.Emails[0] == "" {
		return Profile{}, ErrMissingEmail
	}
	return Profile{
		Email:      strings.ToLower(strings.TrimSpace(raw.Emails[0])),
		GivenName:  raw.GivenName,
		FamilyName: raw.FamilyName,
	}, nil
}
