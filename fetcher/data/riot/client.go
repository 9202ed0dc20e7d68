package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"riftstats/fetcher/requests"
	"riftstats/pkg/config"
	"riftstats/pkg/logger"
	"riftstats/pkg/messages"
	"strconv"
	"time"
)

// Sentinel errors so the pipeline can distinguish absence from failure.
var (
	ErrNotFound  = errors.New("resource not found on the riot api")
	ErrForbidden = errors.New("request forbidden by the riot api")
)

// Client is the rate limited Riot API client.
// The limiter state is shared, so one instance must be reused everywhere.
type Client struct {
	limiter *requests.RateLimiter
	log     *logger.Logger

	apiKey        string
	baseUrl       string
	accountUrl    string
	retryCooldown time.Duration
}

// NewClient creates the client with its own limiter.
func NewClient(cfg config.RiotConfiguration, limits config.LimitsConfiguration, log *logger.Logger) *Client {
	return &Client{
		limiter:       requests.NewRateLimiter(limits),
		log:           log,
		apiKey:        cfg.ApiKey,
		baseUrl:       fmt.Sprintf("https://%s.api.riotgames.com", cfg.Region),
		accountUrl:    fmt.Sprintf("https://%s.api.riotgames.com", cfg.AccountRegion),
		retryCooldown: time.Minute,
	}
}

// get runs a single rate limited request and decodes the body into out.
// 429 sleeps the cooldown and retries the same request; 404 and 403 are
// reported as sentinel errors, never as panics.
func (c *Client) get(ctx context.Context, url string, params map[string]string, out any) error {
	for {
		c.limiter.Wait()

		resp, err := requests.AuthRequest(ctx, url, http.MethodGet, c.apiKey, params)
		if err != nil {
			return fmt.Errorf(messages.RequestFailedMsg+": %w", url, err)
		}

		switch resp.StatusCode {
		case http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			if err != nil {
				return fmt.Errorf("%s: %w", messages.FailedToParseMsg, err)
			}
			return nil

		case http.StatusNotFound:
			resp.Body.Close()
			return ErrNotFound

		case http.StatusForbidden:
			resp.Body.Close()
			c.log.Errorf("forbidden response on %s, check the API key", url)
			return ErrForbidden

		case http.StatusTooManyRequests:
			resp.Body.Close()
			c.log.Infof("rate limit exceeded on %s, sleeping %s", url, c.retryCooldown)
			select {
			case <-time.After(c.retryCooldown):
			case <-ctx.Done():
				return ctx.Err()
			}
			// Retry the same request after the cooldown.
			continue

		default:
			resp.Body.Close()
			c.log.Errorf(messages.BadStatusCodeMsg, resp.StatusCode, url)
			return fmt.Errorf(messages.BadStatusCodeMsg, resp.StatusCode, url)
		}
	}
}

// GetAccountByRiotId resolves a (name, tag) pair to the account puuid.
func (c *Client) GetAccountByRiotId(ctx context.Context, gameName string, tagLine string) (*Account, error) {
	url := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s", c.accountUrl, gameName, tagLine)

	var account Account
	if err := c.get(ctx, url, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// GetSummonerByPuuid gets the summoner data of a given account.
func (c *Client) GetSummonerByPuuid(ctx context.Context, puuid string) (*Summoner, error) {
	url := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-puuid/%s", c.baseUrl, puuid)

	var summoner Summoner
	if err := c.get(ctx, url, nil, &summoner); err != nil {
		return nil, err
	}
	return &summoner, nil
}

// GetMatchHistory gets the ordered match id list of a player, newest first.
func (c *Client) GetMatchHistory(ctx context.Context, puuid string, count int, start int) ([]string, error) {
	url := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids", c.accountUrl, puuid)
	params := map[string]string{
		"count": strconv.Itoa(count),
		"start": strconv.Itoa(start),
	}

	var matchIds []string
	if err := c.get(ctx, url, params, &matchIds); err != nil {
		return nil, err
	}
	return matchIds, nil
}

// GetMatchData gets a given match detail.
func (c *Client) GetMatchData(ctx context.Context, matchId string) (*MatchData, error) {
	url := fmt.Sprintf("%s/lol/match/v5/matches/%s", c.accountUrl, matchId)

	var matchData MatchData
	if err := c.get(ctx, url, nil, &matchData); err != nil {
		return nil, err
	}
	return &matchData, nil
}

// GetChampionMastery gets the full mastery list of a player.
func (c *Client) GetChampionMastery(ctx context.Context, puuid string) ([]MasteryEntry, error) {
	url := fmt.Sprintf("%s/lol/champion-mastery/v4/champion-masteries/by-puuid/%s", c.baseUrl, puuid)

	var masteries []MasteryEntry
	if err := c.get(ctx, url, nil, &masteries); err != nil {
		return nil, err
	}
	return masteries, nil
}

// GetRankedEntries gets the ranked queue entries of a player.
func (c *Client) GetRankedEntries(ctx context.Context, puuid string) ([]LeagueEntry, error) {
	url := fmt.Sprintf("%s/lol/league/v4/entries/by-puuid/%s", c.baseUrl, puuid)

	var entries []LeagueEntry
	if err := c.get(ctx, url, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
