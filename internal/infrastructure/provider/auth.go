package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// tokenExpiryLeeway refreshes the token when it is within this window of
// its recorded expiry, so requests never go out with a token about to die
// mid-flight.
const tokenExpiryLeeway = 60 * time.Second

// Authenticator owns the single shared bearer-token cache slot for the
// provider. The first caller to detect an absent or nearly expired token
// refreshes it; concurrent callers await the same in-flight refresh
// instead of issuing duplicate token requests.
type Authenticator struct {
	httpClient   *http.Client
	tokenURL     string
	clientID     string
	clientSecret string

	group singleflight.Group

	mu        sync.Mutex
	token     string
	expiresAt time.Time

	now func() time.Time
}

func NewAuthenticator(
	httpClient *http.Client,
	tokenURL string,
	clientID string,
	clientSecret string,
) *Authenticator {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Authenticator{
		httpClient:   httpClient,
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		now:          time.Now,
	}
}

// BearerToken returns the cached token, or "" when it is absent or within
// the expiry leeway and must be refreshed.
func (a *Authenticator) BearerToken() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.token == "" || a.now().Add(tokenExpiryLeeway).After(a.expiresAt) {
		return ""
	}

	return a.token
}

// Authenticate fetches a client-credentials token and stores it in the
// cache slot. Concurrent calls coalesce into one upstream request.
func (a *Authenticator) Authenticate(ctx context.Context) error {
	_, err, _ := a.group.Do("token", func() (any, error) {
		return nil, a.fetchToken(ctx)
	})
	if err != nil {
		return fmt.Errorf("fetchToken: %w", err)
	}

	return nil
}

func (a *Authenticator) fetchToken(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", a.clientID)
	form.Set("client_secret", a.clientSecret)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		a.tokenURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return newAPIError(resp)
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}

	if err = json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return fmt.Errorf("json.Decode: %w", err)
	}

	a.mu.Lock()
	a.token = tokenResponse.AccessToken
	a.expiresAt = a.now().Add(time.Duration(tokenResponse.ExpiresIn) * time.Second)
	a.mu.Unlock()

	return nil
}
