package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ontracklabs/ontrack-backend/internal/clients/github"
	"github.com/ontracklabs/ontrack-backend/internal/clients/leetcode"
	"github.com/ontracklabs/ontrack-backend/internal/services"
)

type fakeGithubFetcher struct {
	stats *github.Stats
}

func (f *fakeGithubFetcher) Fetch(ctx context.Context, username string) *github.Stats {
	return f.stats
}

type fakeLeetcodeFetcher struct {
	stats *leetcode.Stats
}

func (f *fakeLeetcodeFetcher) Fetch(ctx context.Context, username string) *leetcode.Stats {
	return f.stats
}

type fakeCareerService struct {
	err error
}

func (f *fakeCareerService) Run(ctx context.Context, userID uuid.UUID) error {
	return f.err
}

type fakeCoachService struct {
	reply string
}

func (f *fakeCoachService) Reply(ctx context.Context, userID uuid.UUID, message string) string {
	return f.reply
}

func perform(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody *strings.Reader
	if body == "" {
		reqBody = strings.NewReader("")
	} else {
		reqBody = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reqBody)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGithubStatsAbsenceIsValidFalse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewStatsHandler(&fakeGithubFetcher{stats: nil}, &fakeLeetcodeFetcher{stats: nil})
	router.GET("/github-stats/:username", h.GithubStats)

	w := perform(t, router, http.MethodGet, "/github-stats/ghost", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: want 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if valid, ok := body["valid"].(bool); !ok || valid {
		t.Fatalf("body: want {\"valid\": false}, got %s", w.Body.String())
	}
}

func TestGithubStatsSuccessEchoesRecord(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewStatsHandler(&fakeGithubFetcher{stats: &github.Stats{
		Valid: true, Username: "octo", Repos: 3, Stars: 7, TopLang: "Python", AccountCreated: "2019-06-21",
	}}, &fakeLeetcodeFetcher{})
	router.GET("/github-stats/:username", h.GithubStats)

	w := perform(t, router, http.MethodGet, "/github-stats/octo", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: want 200, got %d", w.Code)
	}
	for _, want := range []string{`"valid":true`, `"top_lang":"Python"`, `"account_created":"2019-06-21"`} {
		if !strings.Contains(w.Body.String(), want) {
			t.Fatalf("body missing %s: %s", want, w.Body.String())
		}
	}
}

func TestLeetcodeStatsAbsenceIsValidFalse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewStatsHandler(&fakeGithubFetcher{}, &fakeLeetcodeFetcher{stats: nil})
	router.GET("/leetcode-stats/:username", h.LeetcodeStats)

	w := perform(t, router, http.MethodGet, "/leetcode-stats/hidden", "")
	if !strings.Contains(w.Body.String(), `"valid":false`) {
		t.Fatalf("body: want valid false, got %s", w.Body.String())
	}
}

func TestRunAISuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/run-ai/:user_id", NewCareerHandler(&fakeCareerService{}).RunAI)

	w := perform(t, router, http.MethodPost, "/run-ai/"+uuid.NewString(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: want 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"done"`) {
		t.Fatalf("body: want status done, got %s", w.Body.String())
	}
}

func TestRunAIInvalidUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/run-ai/:user_id", NewCareerHandler(&fakeCareerService{}).RunAI)

	w := perform(t, router, http.MethodPost, "/run-ai/not-a-uuid", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: want 400, got %d", w.Code)
	}
}

func TestRunAIPropagatesEngineError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	svc := &fakeCareerService{err: &services.EngineError{Code: "Career Engine Error", Details: "openai http 500"}}
	router.POST("/run-ai/:user_id", NewCareerHandler(svc).RunAI)

	w := perform(t, router, http.MethodPost, "/run-ai/"+uuid.NewString(), "")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status: want 502, got %d", w.Code)
	}
	for _, want := range []string{`"error":"Career Engine Error"`, `"details":"openai http 500"`} {
		if !strings.Contains(w.Body.String(), want) {
			t.Fatalf("body missing %s: %s", want, w.Body.String())
		}
	}
}

func TestCoachReturnsReply(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/coach/:user_id", NewCoachHandler(&fakeCoachService{reply: "Start with SQL joins."}).Coach)

	w := perform(t, router, http.MethodPost, "/coach/"+uuid.NewString(), `{"message": "what should I study?"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status: want 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"reply":"Start with SQL joins."`) {
		t.Fatalf("body: got %s", w.Body.String())
	}
}

func TestCoachRejectsMissingMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/coach/:user_id", NewCoachHandler(&fakeCoachService{}).Coach)

	w := perform(t, router, http.MethodPost, "/coach/"+uuid.NewString(), `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: want 400, got %d", w.Code)
	}
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", NewHealthHandler().Health)

	w := perform(t, router, http.MethodGet, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: want 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "OnTrack backend running") {
		t.Fatalf("body: got %s", w.Body.String())
	}
}
