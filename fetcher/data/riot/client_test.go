package riot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"riftstats/fetcher/requests"
	"riftstats/pkg/config"
	"riftstats/pkg/logger"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, serverUrl string) *Client {
	t.Helper()

	log, err := logger.NewLogger(config.BucketConfiguration{})
	require.NoError(t, err)

	return &Client{
		limiter: requests.NewRateLimiter(config.LimitsConfiguration{
			PerSecond:     config.LimitWindow{Count: 1000, ResetInterval: time.Second},
			PerTwoMinutes: config.LimitWindow{Count: 100000, ResetInterval: 2 * time.Minute},
		}),
		log:           log,
		apiKey:        "test-key",
		baseUrl:       serverUrl,
		accountUrl:    serverUrl,
		retryCooldown: 10 * time.Millisecond,
	}
}

func TestGetMatchHistory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-Riot-Token"))
		assert.Equal(t, "100", r.URL.Query().Get("count"))
		assert.Equal(t, "0", r.URL.Query().Get("start"))

		w.Write([]byte(`["NA1_1","NA1_2","NA1_3"]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	ids, err := client.GetMatchHistory(context.Background(), "puuid-1", 100, 0)
	assert.NoError(t, err)
	assert.Equal(t, []string{"NA1_1", "NA1_2", "NA1_3"}, ids)
}

func TestGetMatchDataNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	match, err := client.GetMatchData(context.Background(), "NA1_404")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, match)
}

func TestGetForbidden(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.GetAccountByRiotId(context.Background(), "Player", "TAG")
	assert.ErrorIs(t, err, ErrForbidden)
}

// A 429 sleeps the cooldown and retries the same request.
func TestGetRetriesOnRateLimit(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"puuid":"p-1","gameName":"Player","tagLine":"TAG"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	account, err := client.GetAccountByRiotId(context.Background(), "Player", "TAG")
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "p-1", account.Puuid)
}

func TestGetBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.GetChampionMastery(context.Background(), "puuid-1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
