package cognito

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"
)

var (
	// ErrUnauthorized marks a rejected or expired token, as opposed to a
	// transient provider failure.
	ErrUnauthorized = errors.New("cognito rejected the token")

	// ErrNoAccessToken is returned when a refresh succeeds but the pool
	// returns no authentication result.
	ErrNoAccessToken = errors.New("no access token in authentication result")
)

// isUnauthorized classifies Cognito API failures caused by bad credentials.
func isUnauthorized(err error) bool {
	var notAuth *types.NotAuthorizedException
	if errors.As(err, &notAuth) {
		return true
	}

	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "NotAuthorizedException"
}
