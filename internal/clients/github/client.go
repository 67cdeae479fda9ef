package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ontracklabs/ontrack-backend/internal/logger"
	"github.com/ontracklabs/ontrack-backend/internal/utils"
)

const fetchTimeout = 10 * time.Second

// Stats is the normalized GitHub activity summary. A nil *Stats means the
// profile is absent (unknown username, network failure).
type Stats struct {
	Valid          bool   `json:"valid"`
	Username       string `json:"username"`
	Repos          int    `json:"repos"`
	Stars          int    `json:"stars"`
	TopLang        string `json:"top_lang"`
	AccountCreated string `json:"account_created"`
}

type Client struct {
	log        *logger.Logger
	baseURL    string
	httpClient *http.Client
}

func NewClient(log *logger.Logger) *Client {
	baseURL := utils.GetEnv("GITHUB_API_BASE", "https://api.github.com", log)
	return &Client{
		log:        log.With("client", "GithubClient"),
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: fetchTimeout},
	}
}

type userResponse struct {
	PublicRepos int    `json:"public_repos"`
	CreatedAt   string `json:"created_at"`
}

type repoResponse struct {
	StargazersCount int    `json:"stargazers_count"`
	Language        string `json:"language"`
}

// Fetch resolves a GitHub activity summary. It never returns an error: absence
// comes back as nil, a rate-limited fetch as a degraded-but-valid record.
func (c *Client) Fetch(ctx context.Context, username string) *Stats {
	if username == "" {
		c.log.Debug("GitHub fetch skipped, no username provided")
		return nil
	}

	fetchLog := c.log.With("username", username)
	fetchLog.Info("GitHub fetch starting")

	resp, err := c.get(ctx, fmt.Sprintf("/users/%s", username))
	if err != nil {
		fetchLog.Warn("GitHub user fetch failed", "error", err)
		return nil
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		fetchLog.Warn("GitHub user not found")
		return nil
	case resp.StatusCode == http.StatusForbidden:
		fetchLog.Warn("GitHub rate limit hit, returning degraded stats")
		return &Stats{Valid: true, Repos: 0, Stars: 0, TopLang: "Unknown (Rate Limit)"}
	case resp.StatusCode != http.StatusOK:
		fetchLog.Warn("GitHub user fetch returned unexpected status", "status", resp.StatusCode)
		return nil
	}

	var user userResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		fetchLog.Warn("GitHub user decode failed", "error", err)
		return nil
	}

	totalStars, topLang := c.fetchRepoSummary(ctx, username, fetchLog)

	created := user.CreatedAt
	if len(created) > 10 {
		created = created[:10]
	}

	fetchLog.Info("GitHub fetch succeeded",
		"repos", user.PublicRepos,
		"stars", totalStars,
		"top_lang", topLang,
	)

	return &Stats{
		Valid:          true,
		Username:       username,
		Repos:          user.PublicRepos,
		Stars:          totalStars,
		TopLang:        topLang,
		AccountCreated: created,
	}
}

// fetchRepoSummary tallies stars and languages over up to 100 repositories.
// Repo-level failures degrade to zero stars and the "None" sentinel.
func (c *Client) fetchRepoSummary(ctx context.Context, username string, fetchLog *logger.Logger) (int, string) {
	resp, err := c.get(ctx, fmt.Sprintf("/users/%s/repos?per_page=100", username))
	if err != nil {
		fetchLog.Warn("GitHub repos fetch failed", "error", err)
		return 0, topLanguage(nil)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fetchLog.Warn("GitHub repos fetch returned unexpected status", "status", resp.StatusCode)
		return 0, topLanguage(nil)
	}

	var repositories []repoResponse
	if err := json.NewDecoder(resp.Body).Decode(&repositories); err != nil {
		fetchLog.Warn("GitHub repos decode failed", "error", err)
		return 0, topLanguage(nil)
	}

	totalStars := 0
	var languages []string
	for _, repo := range repositories {
		totalStars += repo.StargazersCount
		if repo.Language != "" {
			languages = append(languages, cleanLanguage(repo.Language))
		}
	}
	return totalStars, topLanguage(languages)
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	return c.httpClient.Do(req)
}

// cleanLanguage collapses messy repo language names into human-readable
// buckets: notebooks count as Python, markup/styling as Web Basics.
func cleanLanguage(language string) string {
	if language == "" {
		return "None"
	}
	lower := strings.ToLower(language)
	switch {
	case strings.Contains(lower, "jupyter"):
		return "Python"
	case strings.Contains(lower, "html"), strings.Contains(lower, "css"):
		return "Web Basics"
	case strings.Contains(lower, "c++"):
		return "C++"
	}
	return language
}

// topLanguage returns the most frequent label, ties broken by first
// encounter. No languages at all yields "None".
func topLanguage(languages []string) string {
	if len(languages) == 0 {
		return "None"
	}
	counts := make(map[string]int, len(languages))
	var order []string
	for _, lang := range languages {
		if counts[lang] == 0 {
			order = append(order, lang)
		}
		counts[lang]++
	}
	best := order[0]
	for _, lang := range order[1:] {
		if counts[lang] > counts[best] {
			best = lang
		}
	}
	return best
}
