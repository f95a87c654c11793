package cognito

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"github.com/commercekit/authbridge/pkg/auth"
)

// Cognito user-pool attribute names carrying profile data.
const (
	attrEmail      = "email"
	attrGivenName  = "given_name"
	attrFamilyName = "family_name"
)

// api is the slice of the Cognito Identity Provider API the client depends on.
type api interface {
	GetUser(ctx context.Context, params *cip.GetUserInput, optFns ...func(*cip.Options)) (*cip.GetUserOutput, error)
	InitiateAuth(ctx context.Context, params *cip.InitiateAuthInput, optFns ...func(*cip.Options)) (*cip.InitiateAuthOutput, error)
}

// User is the provider-native identity resolved from an access token.
type User struct {
	Username   string
	Attributes map[string]string
}

// RawProfile maps the Cognito attribute set into the profile shape the
// reconciliation core consumes.
func (u User) RawProfile() auth.RawProfile {
	p := auth.RawProfile{
		GivenName:  u.Attributes[attrGivenName],
		FamilyName: u.Attributes[attrFamilyName],
	}
	if email, ok := u.Attributes[attrEmail]; ok {
		p.Emails = []string{email}
	}
	return p
}

// Client talks to one Cognito user pool.
type Client struct {
	api      api
	clientID string
}

// New builds a client for the configured user pool. Static credentials are
// used when provided, otherwise the default AWS credential chain applies.
func New(ctx context.Context, cfg Config) (*Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return &Client{
		api:      cip.NewFromConfig(awsCfg),
		clientID: cfg.ClientID,
	}, nil
}

// GetUserByAccessToken resolves the user the access token belongs to.
// A rejected token yields an error matching ErrUnauthorized.
func (c *Client) GetUserByAccessToken(ctx context.Context, accessToken string) (User, error) {
	out, err := c.api.GetUser(ctx, &cip.GetUserInput{
		AccessToken: aws.String(accessToken),
	})
	if err != nil {
		if isUnauthorized(err) {
			return User{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		return User{}, fmt.Errorf("failed to get cognito user: %w", err)
	}

	user := User{
		Username:   aws.ToString(out.Username),
		Attributes: make(map[string]string, len(out.UserAttributes)),
	}
	for _, attr := range out.UserAttributes {
		user.Attributes[aws.ToString(attr.Name)] = aws.ToString(attr.Value)
	}
	return user, nil
}

// RefreshAccessToken exchanges a refresh token for a new access token via the
// pool's refresh-token auth flow.
func (c *Client) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	out, err := c.api.InitiateAuth(ctx, &cip.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeRefreshTokenAuth,
		ClientId: aws.String(c.clientID),
		AuthParameters: map[string]string{
			"REFRESH_TOKEN": refreshToken,
		},
	})
	if err != nil {
		if isUnauthorized(err) {
			return "", fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		return "", fmt.Errorf("failed to refresh access token: %w", err)
	}

	if out.AuthenticationResult == nil || out.AuthenticationResult.AccessToken == nil {
		return "", ErrNoAccessToken
	}
	return aws.ToString(out.AuthenticationResult.AccessToken), nil
}
