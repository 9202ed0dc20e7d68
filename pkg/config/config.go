package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// RiotConfiguration holds the credentials and regions used on the Riot API.
type RiotConfiguration struct {
	ApiKey        string
	Region        string
	AccountRegion string
}

// LimitWindow is a single rate limit constraint of the Riot API.
type LimitWindow struct {
	Count         int
	ResetInterval time.Duration
}

// LimitsConfiguration holds both development key constraints.
type LimitsConfiguration struct {
	PerSecond     LimitWindow
	PerTwoMinutes LimitWindow
}

// DatabaseConfiguration for the Postgres connection.
type DatabaseConfiguration struct {
	URL string
}

// RedisConfiguration for the cache store.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// BucketConfiguration for the S3 compatible bucket receiving the logs.
type BucketConfiguration struct {
	Region       string
	Endpoint     string
	AccessKey    string
	AccessSecret string
	LogBucket    string
}

// StatsSiteConfiguration for the scraped champion statistics site.
type StatsSiteConfiguration struct {
	BaseUrl string
}

// CacheConfiguration holds the TTLs of the read side caches.
type CacheConfiguration struct {
	MatchHistoryTTL time.Duration
	MasteryTTL      time.Duration
	MatchupDataTTL  time.Duration
}

// Config is the full application configuration.
type Config struct {
	Riot      RiotConfiguration
	Limits    LimitsConfiguration
	Database  DatabaseConfiguration
	Redis     RedisConfiguration
	Bucket    BucketConfiguration
	StatsSite StatsSiteConfiguration
	Cache     CacheConfiguration
}

// Load reads the configuration from the environment.
// The .env file itself is loaded by each binary with godotenv.
func Load() (*Config, error) {
	cfg := &Config{
		Riot: RiotConfiguration{
			ApiKey:        os.Getenv("RIOT_API_KEY"),
			Region:        getEnvDefault("RIOT_API_REGION", "na1"),
			AccountRegion: getEnvDefault("RIOT_API_ACCOUNT_REGION", "americas"),
		},
		Limits: LimitsConfiguration{
			PerSecond: LimitWindow{
				Count:         getEnvInt("RIOT_API_RATE_LIMIT_PER_SECOND", 20),
				ResetInterval: time.Second,
			},
			PerTwoMinutes: LimitWindow{
				Count:         getEnvInt("RIOT_API_RATE_LIMIT_PER_TWO_MINUTES", 100),
				ResetInterval: 2 * time.Minute,
			},
		},
		Database: DatabaseConfiguration{
			URL: os.Getenv("DATABASE_URL"),
		},
		Redis: RedisConfiguration{
			Host:     getEnvDefault("REDIS_HOST", "localhost"),
			Port:     getEnvDefault("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Bucket: BucketConfiguration{
			Region:       os.Getenv("BUCKET_REGION"),
			Endpoint:     os.Getenv("BUCKET_ENDPOINT"),
			AccessKey:    os.Getenv("BUCKET_ACCESS_KEY"),
			AccessSecret: os.Getenv("BUCKET_ACCESS_SECRET"),
			LogBucket:    os.Getenv("BUCKET_LOG_NAME"),
		},
		StatsSite: StatsSiteConfiguration{
			BaseUrl: getEnvDefault("STATS_SITE_URL", "https://counterstats.net"),
		},
		Cache: CacheConfiguration{
			MatchHistoryTTL: getEnvDuration("CACHE_MATCH_HISTORY_TTL", time.Hour),
			MasteryTTL:      getEnvDuration("CACHE_MASTERY_TTL", 2*time.Hour),
			MatchupDataTTL:  getEnvDuration("CACHE_MATCHUP_DATA_TTL", time.Hour),
		},
	}

	if cfg.Riot.ApiKey == "" {
		return nil, fmt.Errorf("RIOT_API_KEY is not set")
	}

	return cfg, nil
}

// getEnvDefault returns the environment value or a fallback if empty.
func getEnvDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvInt parses a integer environment value, falling back on bad values.
func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

// getEnvDuration parses the value as seconds.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	seconds, err := strconv.Atoi(os.Getenv(key))
	if err != nil || seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
