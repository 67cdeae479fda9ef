package leetcode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ontracklabs/ontrack-backend/internal/logger"
	"github.com/ontracklabs/ontrack-backend/internal/utils"
)

const fetchTimeout = 10 * time.Second

// Stats is the normalized LeetCode solved-count summary. A nil *Stats means
// the profile is absent (unknown username, hidden profile, network failure).
type Stats struct {
	Valid       bool   `json:"valid"`
	Username    string `json:"username"`
	TotalSolved int    `json:"total_solved"`
	Easy        int    `json:"easy"`
	Medium      int    `json:"medium"`
	Hard        int    `json:"hard"`
}

type Client struct {
	log        *logger.Logger
	baseURL    string
	httpClient *http.Client
}

func NewClient(log *logger.Logger) *Client {
	baseURL := utils.GetEnv("LEETCODE_API_BASE", "https://alfa-leetcode-api.onrender.com", log)
	return &Client{
		log:        log.With("client", "LeetcodeClient"),
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: fetchTimeout},
	}
}

type solvedResponse struct {
	// A pointer so a hidden or unknown profile (missing field) is
	// distinguishable from zero problems solved.
	SolvedProblem *int `json:"solvedProblem"`
	EasySolved    int  `json:"easySolved"`
	MediumSolved  int  `json:"mediumSolved"`
	HardSolved    int  `json:"hardSolved"`
}

// Fetch resolves a LeetCode solved-count summary. It never returns an error:
// absence comes back as nil.
func (c *Client) Fetch(ctx context.Context, username string) *Stats {
	if username == "" {
		c.log.Debug("LeetCode fetch skipped, no username provided")
		return nil
	}

	fetchLog := c.log.With("username", username)
	fetchLog.Info("LeetCode fetch starting")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s/solved", c.baseURL, username), nil)
	if err != nil {
		fetchLog.Warn("LeetCode request build failed", "error", err)
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		fetchLog.Warn("LeetCode fetch failed", "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fetchLog.Warn("LeetCode fetch returned unexpected status", "status", resp.StatusCode)
		return nil
	}

	var solved solvedResponse
	if err := json.NewDecoder(resp.Body).Decode(&solved); err != nil {
		fetchLog.Warn("LeetCode decode failed", "error", err)
		return nil
	}

	if solved.SolvedProblem == nil {
		fetchLog.Warn("LeetCode user not found or profile hidden")
		return nil
	}

	fetchLog.Info("LeetCode fetch succeeded", "total_solved", *solved.SolvedProblem)

	return &Stats{
		Valid:       true,
		Username:    username,
		TotalSolved: *solved.SolvedProblem,
		Easy:        solved.EasySolved,
		Medium:      solved.MediumSolved,
		Hard:        solved.HardSolved,
	}
}
