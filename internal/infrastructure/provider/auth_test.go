package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTokenServer(t *testing.T, fetches *atomic.Int64, expiresIn int64) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)

		require.NoError(t, r.ParseForm())
		require.Equal(t, "client_credentials", r.FormValue("grant_type"))
		require.Equal(t, "test-id", r.FormValue("client_id"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"token-abc","expires_in":` + strconv.FormatInt(expiresIn, 10) + `}`))
	}))
}

func TestAuthenticatorCachesToken(t *testing.T) {
	rq := require.New(t)

	var fetches atomic.Int64

	server := newTokenServer(t, &fetches, 3600)
	defer server.Close()

	auth := NewAuthenticator(server.Client(), server.URL, "test-id", "test-secret")

	rq.Empty(auth.BearerToken())

	rq.NoError(auth.Authenticate(context.Background()))
	rq.Equal("token-abc", auth.BearerToken())
	rq.Equal(int64(1), fetches.Load())

	// Subsequent reads hit the cache slot.
	rq.Equal("token-abc", auth.BearerToken())
	rq.Equal(int64(1), fetches.Load())
}

func TestAuthenticatorExpiryLeeway(t *testing.T) {
	rq := require.New(t)

	var fetches atomic.Int64

	server := newTokenServer(t, &fetches, 3600)
	defer server.Close()

	auth := NewAuthenticator(server.Client(), server.URL, "test-id", "test-secret")

	now := time.Now()
	auth.now = func() time.Time { return now }

	rq.NoError(auth.Authenticate(context.Background()))
	rq.Equal("token-abc", auth.BearerToken())

	// One second inside the leeway window the token reads as absent.
	now = now.Add(3600*time.Second - tokenExpiryLeeway + time.Second)
	rq.Empty(auth.BearerToken())

	rq.NoError(auth.Authenticate(context.Background()))
	rq.Equal(int64(2), fetches.Load())
	rq.Equal("token-abc", auth.BearerToken())
}

func TestAuthenticatorCoalescesConcurrentRefreshes(t *testing.T) {
	rq := require.New(t)

	var fetches atomic.Int64

	release := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fetches.Add(1)
		<-release

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"token-abc","expires_in":3600}`))
	}))
	defer server.Close()

	auth := NewAuthenticator(server.Client(), server.URL, "test-id", "test-secret")

	var wg sync.WaitGroup

	const callers = 5

	for range callers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			rq.NoError(auth.Authenticate(context.Background()))
		}()
	}

	// Give the goroutines time to pile onto the in-flight refresh.
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	rq.Equal(int64(1), fetches.Load())
	rq.Equal("token-abc", auth.BearerToken())
}
