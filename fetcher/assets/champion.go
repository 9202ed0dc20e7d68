package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"riftstats/fetcher/requests"
	"riftstats/pkg/redis"
	"strconv"
	"sync"
	"time"
)

// Consts used across the package.
const (
	ddragon         = "https://ddragon.leagueoflegends.com/"
	championsKey    = "ddragon:champions"
	championsTTL    = 24 * time.Hour
	fallbackVersion = "13.24.1"
)

// Definition for extracting the champion data.
type fullChampion struct {
	Data map[string]championEntry `json:"data"`
}

type championEntry struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// ChampionResolver translates Riot numeric champion ids into display names
// using the Data Dragon. The table is loaded once per process and mirrored
// on redis so restarts don't refetch it.
type ChampionResolver struct {
	redis *redis.RedisClient

	once     sync.Once
	idToName map[int]string
}

// NewChampionResolver creates the resolver. The redis client may be nil,
// in which case every process loads the table from the Data Dragon.
func NewChampionResolver(redis *redis.RedisClient) *ChampionResolver {
	return &ChampionResolver{
		redis:    redis,
		idToName: make(map[int]string),
	}
}

// NameById returns the champion display name for a numeric id.
// Unknown ids get a synthesized name instead of an error, since a missing
// display name should never block a mastery refresh.
func (r *ChampionResolver) NameById(ctx context.Context, championId int) string {
	r.once.Do(func() {
		r.load(ctx)
	})

	if name, exists := r.idToName[championId]; exists {
		return name
	}
	return fmt.Sprintf("Champion %d", championId)
}

// load fills the id to name table, trying redis before the Data Dragon.
func (r *ChampionResolver) load(ctx context.Context) {
	if r.redis != nil {
		if cached, err := r.redis.Get(ctx, championsKey); err == nil {
			var mapping map[int]string
			if err := json.Unmarshal([]byte(cached), &mapping); err == nil && len(mapping) > 0 {
				r.idToName = mapping
				return
			}
		}
	}

	mapping, err := r.fetchMapping(ctx)
	if err != nil || len(mapping) == 0 {
		// Leave the table empty; NameById falls back to synthesized names.
		return
	}
	r.idToName = mapping

	if r.redis != nil {
		if raw, err := json.Marshal(mapping); err == nil {
			r.redis.Set(ctx, championsKey, string(raw), championsTTL)
		}
	}
}

// fetchMapping downloads the champion table for the latest version.
func (r *ChampionResolver) fetchMapping(ctx context.Context) (map[int]string, error) {
	version, err := r.latestVersion(ctx)
	if err != nil {
		version = fallbackVersion
	}

	url := fmt.Sprintf("%scdn/%s/data/en_US/champion.json", ddragon, version)
	resp, err := requests.Request(ctx, url, "GET")
	if err != nil {
		return nil, fmt.Errorf("couldn't get the champion data: %v", err)
	}
	defer resp.Body.Close()

	var championsData fullChampion
	if err := json.NewDecoder(resp.Body).Decode(&championsData); err != nil {
		return nil, fmt.Errorf("couldn't convert the body to json: %v", err)
	}

	mapping := make(map[int]string, len(championsData.Data))
	for _, champion := range championsData.Data {
		id, err := strconv.Atoi(champion.Key)
		if err != nil || champion.Name == "" {
			continue
		}
		mapping[id] = champion.Name
	}

	return mapping, nil
}

// latestVersion gets the most recent Data Dragon version.
func (r *ChampionResolver) latestVersion(ctx context.Context) (string, error) {
	resp, err := requests.Request(ctx, ddragon+"api/versions.json", "GET")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var versions []string
	if err := json.NewDecoder(resp.Body).Decode(&versions); err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("empty version list")
	}

	return versions[0], nil
}
