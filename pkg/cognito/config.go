package cognito

// Config holds the user pool and hosted UI settings for a Cognito provider.
type Config struct {
	Region          string   `env:"COGNITO_REGION,required"`
	UserPoolID      string   `env:"COGNITO_USER_POOL_ID,required"`
	ClientID        string   `env:"COGNITO_CLIENT_ID,required"`
	ClientSecret    string   `env:"COGNITO_CLIENT_SECRET"`
	AccessKeyID     string   `env:"COGNITO_ACCESS_KEY_ID"`
	SecretAccessKey string   `env:"COGNITO_SECRET_ACCESS_KEY"`
	Domain          string   `env:"COGNITO_DOMAIN"`
	RedirectURL     string   `env:"COGNITO_REDIRECT_URL"`
	Scopes          []string `env:"COGNITO_SCOPES" envSeparator:"," envDefault:"openid,email,profile"`
}
