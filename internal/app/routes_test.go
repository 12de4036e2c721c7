package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/felixbrock/myllmmodel/internal/analyzer"
	"github.com/felixbrock/myllmmodel/internal/domain"
	"github.com/felixbrock/myllmmodel/internal/persistence"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	catalog, err := persistence.NewCatalog()
	require.NoError(t, err)

	return &App{
		ModelRepo:   persistence.ModelRepo{Models: catalog.Models},
		PromptRepo:  persistence.PromptRepo{Prompts: catalog.Prompts},
		PricingRepo: persistence.PricingRepo{Tiers: catalog.Pricing},
		RunRepo:     persistence.RunRepo{},
		Config:      Config{Port: "0", RateLimit: 1000, RateBurst: 1000, ShutdownTimeout: time.Second},
		Now:         func() time.Time { return time.Date(2031, 1, 2, 0, 0, 0, 0, time.UTC) },
	}
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestIndex(t *testing.T) {
	h := newTestApp(t).Handler()

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "Explore, Compare, and Build with LLMs")
	assert.Contains(t, body, "© 2031 myllmmodel.com")
	assert.Contains(t, body, `value="gpt-4o" selected`)
	assert.Contains(t, body, `value="llama-3.1-70b" selected`)
	assert.Contains(t, body, "Prompt is empty")
	assert.Contains(t, body, "$79/mo")
}

func TestIndexErrors(t *testing.T) {
	h := newTestApp(t).Handler()

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not found")

	rec = serve(h, httptest.NewRequest(http.MethodDelete, "/", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	req.Header.Set("HX-Request", "true")
	rec = serve(h, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-code="404"`)
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestApp(t).Handler()

	tests := []struct {
		method string
		target string
		json   bool
	}{
		{http.MethodPost, "/", false},
		{http.MethodPost, "/compare?slot=a&model=gpt-4o", false},
		{http.MethodGet, "/playground/run", false},
		{http.MethodPost, "/prompts", false},
		{http.MethodPost, "/prompts/draft?id=1", false},
		{http.MethodGet, "/prompts/analyze", false},
		{http.MethodPut, "/api/analyze", true},
		{http.MethodPost, "/api/models", true},
		{http.MethodDelete, "/api/prompts", true},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := serve(h, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			if tt.json {
				assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
				return
			}
			assert.Contains(t, rec.Body.String(), `data-code="405"`)

			req := httptest.NewRequest(tt.method, tt.target, nil)
			req.Header.Set("HX-Request", "true")
			rec = serve(h, req)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `data-code="405"`)
		})
	}
}

func TestIndexHead(t *testing.T) {
	h := newTestApp(t).Handler()

	rec := serve(h, httptest.NewRequest(http.MethodHead, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Empty(t, rec.Body.String())
}

func TestCompare(t *testing.T) {
	h := newTestApp(t).Handler()

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/compare?slot=b&model=mistral-large", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="compare-b"`)
	assert.Contains(t, rec.Body.String(), `value="mistral-large" selected`)

	for _, target := range []string{"/compare?slot=c&model=gpt-4o", "/compare?slot=a&model=nope", "/compare"} {
		rec = serve(h, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestPlaygroundRun(t *testing.T) {
	h := newTestApp(t).Handler()

	for _, prompt := range []string{"hi", persistence.DefaultPlaygroundPrompt, ""} {
		rec := serve(h, postForm("/playground/run", url.Values{"prompt": {prompt}}))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Build, test, and compare AI models in minutes")
		assert.Contains(t, rec.Body.String(), `id="playground-response"`)
	}

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/playground/run", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestPromptSearch(t *testing.T) {
	h := newTestApp(t).Handler()

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/prompts?q=UX", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "UX Feedback Bot")
	assert.NotContains(t, body, "Blog Outliner")
	assert.NotContains(t, body, "Code Reviewer")

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/prompts", nil))
	assert.Equal(t, 3, strings.Count(rec.Body.String(), "/prompts/draft?id="))
}

func TestPromptDraft(t *testing.T) {
	h := newTestApp(t).Handler()

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/prompts/draft?id=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "You are a senior TypeScript reviewer.")
	assert.Contains(t, rec.Body.String(), "7/15")
	assert.Contains(t, rec.Body.String(), analyzer.TipDetail)

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/prompts/draft?id=abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/prompts/draft?id=99", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPromptAnalyze(t *testing.T) {
	h := newTestApp(t).Handler()

	rec := serve(h, postForm("/prompts/analyze", url.Values{"prompt": {"hi"}}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "0/15")
	assert.Equal(t, 4, strings.Count(rec.Body.String(), "<li>"))

	rec = serve(h, postForm("/prompts/analyze", url.Values{"prompt": {"   "}}))
	assert.Contains(t, rec.Body.String(), analyzer.TipEmpty)
}

func TestAPIAnalyze(t *testing.T) {
	h := newTestApp(t).Handler()

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"prompt":"hi"}`))
	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var ev analyzer.Evaluation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ev))
	assert.Equal(t, 0, ev.Score)
	assert.Equal(t, 1, ev.Words)
	assert.Equal(t, []string{analyzer.TipDetail, analyzer.TipRole, analyzer.TipConstraints, analyzer.TipContext}, ev.Tips)
}

func TestAPIAnalyzeErrors(t *testing.T) {
	h := newTestApp(t).Handler()

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"prompt":`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Bad request"}`, rec.Body.String())

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/api/analyze", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
}

func TestAPICatalog(t *testing.T) {
	h := newTestApp(t).Handler()

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/models", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var models []domain.Model
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &models))
	assert.Len(t, models, 4)

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/api/prompts?q=code", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var prompts []domain.Prompt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prompts))
	require.Len(t, prompts, 1)
	assert.Equal(t, "Code Reviewer", prompts[0].Title)
}

func TestRateLimit(t *testing.T) {
	a := newTestApp(t)
	a.Config.RateLimit = 0.001
	a.Config.RateBurst = 2
	h := a.Handler()

	analyze := func(remote string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"prompt":"hi"}`))
		req.RemoteAddr = remote
		return serve(h, req).Code
	}

	assert.Equal(t, http.StatusOK, analyze("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, analyze("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, analyze("10.0.0.1:1002"))
	assert.Equal(t, http.StatusOK, analyze("10.0.0.2:1000"))

	// Unlimited routes are unaffected.
	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/models", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestId(t *testing.T) {
	h := newTestApp(t).Handler()

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, "ok", rec.Body.String())
	_, err := uuid.Parse(rec.Header().Get(requestIdHeader))
	assert.NoError(t, err)

	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIdHeader, id)
	assert.Equal(t, id, serve(h, req).Header().Get(requestIdHeader))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIdHeader, "<script>")
	assert.NotEqual(t, "<script>", serve(h, req).Header().Get(requestIdHeader))
}

func TestMetrics(t *testing.T) {
	h := newTestApp(t).Handler()

	serve(h, postForm("/prompts/analyze", url.Values{"prompt": {"hi"}}))
	rec := serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "myllmmodel_prompt_analyses_total")
	assert.Contains(t, rec.Body.String(), "myllmmodel_prompt_score_bucket")
	assert.Contains(t, rec.Body.String(), `myllmmodel_http_requests_total{code="200",method="POST",route="/prompts/analyze"}`)
}
