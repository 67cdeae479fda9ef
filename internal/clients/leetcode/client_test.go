package leetcode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ontracklabs/ontrack-backend/internal/logger"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{
		log:        log,
		baseURL:    srv.URL,
		httpClient: srv.Client(),
	}
}

func TestFetchEmptyUsername(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request for empty username: %s", r.URL.Path)
	}))
	if stats := c.Fetch(context.Background(), ""); stats != nil {
		t.Fatalf("Fetch(\"\"): want nil, got %+v", stats)
	}
}

func TestFetchMissingSolvedFieldIsAbsence(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors": "user does not exist"}`))
	}))
	if stats := c.Fetch(context.Background(), "hidden"); stats != nil {
		t.Fatalf("Fetch on missing solvedProblem: want nil, got %+v", stats)
	}
}

func TestFetchNonOKStatusIsAbsence(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	if stats := c.Fetch(context.Background(), "anyone"); stats != nil {
		t.Fatalf("Fetch on 503: want nil, got %+v", stats)
	}
}

func TestFetchParsesSolvedCounts(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/neetcoder/solved" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"solvedProblem": 150, "easySolved": 80, "mediumSolved": 60, "hardSolved": 10}`))
	}))

	stats := c.Fetch(context.Background(), "neetcoder")
	if stats == nil {
		t.Fatalf("Fetch: want stats, got nil")
	}
	if !stats.Valid || stats.Username != "neetcoder" {
		t.Fatalf("identity fields wrong: %+v", stats)
	}
	if stats.TotalSolved != 150 || stats.Easy != 80 || stats.Medium != 60 || stats.Hard != 10 {
		t.Fatalf("solved counts wrong: %+v", stats)
	}
}

func TestFetchZeroSolvedIsStillValid(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"solvedProblem": 0, "easySolved": 0, "mediumSolved": 0, "hardSolved": 0}`))
	}))

	stats := c.Fetch(context.Background(), "newbie")
	if stats == nil {
		t.Fatalf("Fetch: zero solved must not read as absence")
	}
	if stats.TotalSolved != 0 {
		t.Fatalf("total_solved: want 0, got %d", stats.TotalSolved)
	}
}
