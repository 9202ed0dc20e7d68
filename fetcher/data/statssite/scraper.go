package statssite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ErrStatsUnavailable means the stats page couldn't be fetched or parsed.
// Callers fall back to local aggregates when they see it.
var ErrStatsUnavailable = errors.New("champion stats unavailable")

// Provider serves ladder wide champion statistics. The production
// implementation scrapes a public stats site.
type Provider interface {
	GetChampionStats(ctx context.Context, champion string, role string) (*ChampionStats, error)
	GetCounters(ctx context.Context, champion string) ([]CounterStats, error)
}

// Scraper extracts champion statistics from the stats site HTML pages.
type Scraper struct {
	httpClient *http.Client
	baseUrl    string
}

// NewScraper creates the scraper.
func NewScraper(baseUrl string) *Scraper {
	return &Scraper{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseUrl:    strings.TrimSuffix(baseUrl, "/"),
	}
}

// GetChampionStats scrapes the win, pick and ban rates of a champion.
func (s *Scraper) GetChampionStats(ctx context.Context, champion string, role string) (*ChampionStats, error) {
	url := fmt.Sprintf("%s/champion/%s", s.baseUrl, championSlug(champion))
	if role != "" {
		url += "?role=" + strings.ToLower(role)
	}

	body, err := s.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	stats, err := parseChampionStats(body)
	if err != nil {
		return nil, err
	}

	stats.Champion = champion
	stats.Role = role
	return stats, nil
}

// GetCounters scrapes the champions that perform best against the given one.
func (s *Scraper) GetCounters(ctx context.Context, champion string) ([]CounterStats, error) {
	url := fmt.Sprintf("%s/champion/%s/counters", s.baseUrl, championSlug(champion))

	body, err := s.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return parseCounters(body)
}

// fetch downloads a stats page. Browser-ish headers: the site serves static
// HTML but refuses requests without a user agent.
func (s *Scraper) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStatsUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: status code %d", ErrStatsUnavailable, resp.StatusCode)
	}

	return resp.Body, nil
}

// parseChampionStats extracts the rate summary from a champion page.
func parseChampionStats(body io.Reader) (*ChampionStats, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStatsUnavailable, err)
	}

	stats := &ChampionStats{}
	found := false

	doc.Find("div.champion-stats div.stat").Each(func(i int, stat *goquery.Selection) {
		label := strings.ToLower(strings.TrimSpace(stat.Find("span.label").Text()))
		value, err := parsePercent(stat.Find("span.value").Text())
		if err != nil {
			return
		}

		switch {
		case strings.Contains(label, "win"):
			stats.WinRate = value
			found = true
		case strings.Contains(label, "pick"):
			stats.PickRate = value
			found = true
		case strings.Contains(label, "ban"):
			stats.BanRate = value
			found = true
		}
	})

	if !found {
		return nil, fmt.Errorf("%w: no stats on page", ErrStatsUnavailable)
	}
	return stats, nil
}

// parseCounters extracts the counter rows from a counters page.
func parseCounters(body io.Reader) ([]CounterStats, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStatsUnavailable, err)
	}

	var counters []CounterStats
	doc.Find("table.counters tbody tr").Each(func(i int, row *goquery.Selection) {
		champion := strings.TrimSpace(row.Find("td.champion").Text())
		if champion == "" {
			return
		}

		winRate, err := parsePercent(row.Find("td.win-rate").Text())
		if err != nil {
			return
		}

		games, _ := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(row.Find("td.games").Text()), ",", ""))

		counters = append(counters, CounterStats{
			Champion: champion,
			WinRate:  winRate,
			Games:    games,
		})
	})

	if len(counters) == 0 {
		return nil, fmt.Errorf("%w: no counters on page", ErrStatsUnavailable)
	}
	return counters, nil
}

// parsePercent converts strings like "51.3%" into 51.3.
func parsePercent(raw string) (float64, error) {
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "%")
	return strconv.ParseFloat(raw, 64)
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]`)

// championSlug converts a display name into the URL segment the site uses.
// "Lee Sin" becomes "leesin", "Kai'Sa" becomes "kaisa".
func championSlug(name string) string {
	return slugPattern.ReplaceAllString(strings.ToLower(name), "")
}
