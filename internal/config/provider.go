package config

// Provider holds the credentials and endpoints of the external
// investor-management platform. Credentials are optional: an instance
// without them still serves the fallback deal configuration and answers
// intake operations with 503 until an operator configures them.
type Provider struct {
	BaseURL      string `env:"PROVIDER_BASE_URL"`
	TokenURL     string `env:"PROVIDER_TOKEN_URL"`
	ClientID     string `env:"PROVIDER_CLIENT_ID"`
	ClientSecret string `env:"PROVIDER_CLIENT_SECRET" json:"-"`
	DealID       string `env:"PROVIDER_DEAL_ID"`
}

// Configured reports whether all required provider credentials are set.
func (p Provider) Configured() bool {
	return p.BaseURL != "" && p.TokenURL != "" && p.ClientID != "" && p.ClientSecret != "" && p.DealID != ""
}
