// Package cognito integrates an AWS Cognito user pool as a federated
// identity provider.
//
// The Client wraps the Cognito Identity Provider API for the two calls the
// authentication flow needs: resolving a verified user profile from an access
// token (GetUser) and minting a fresh access token from a refresh token
// (InitiateAuth with the refresh-token flow). Token exchange against the
// pool's hosted UI runs through golang.org/x/oauth2.
//
// Unauthorized responses from the pool are distinguishable from transient
// failures via ErrUnauthorized so callers can fail an attempt instead of
// retrying it.
package cognito
