package app

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/felixbrock/myllmmodel/internal/analyzer"
	"github.com/felixbrock/myllmmodel/internal/components"
	"github.com/felixbrock/myllmmodel/internal/domain"
	"github.com/felixbrock/myllmmodel/internal/persistence"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type analyzeReq struct {
	Prompt string `json:"prompt"`
}

// Handler builds the routing tree. Every call gets its own rate limiter.
func (a *App) Handler() http.Handler {
	limiter := newIPLimiter(a.Config.RateLimit, a.Config.RateBurst)
	tooManyComponents := ComponentHandler(func(w http.ResponseWriter, r *http.Request) *ComponentResponse {
		return errorResponse(get429(), nil)
	})
	tooManyAPI := APIHandler(func(w http.ResponseWriter, r *http.Request) *APIResponse {
		return apiErrorResponse(get429(), nil)
	})

	mux := http.NewServeMux()

	handle := func(route string, h http.Handler) {
		mux.Handle(route, instrument(route, h))
	}

	handle("/", ComponentHandler(a.index))
	handle("/compare", ComponentHandler(a.compare))
	handle("/playground/run", limiter.wrap("/playground/run", ComponentHandler(a.playgroundRun), tooManyComponents))
	handle("/prompts", ComponentHandler(a.promptSearch))
	handle("/prompts/draft", ComponentHandler(a.promptDraft))
	handle("/prompts/analyze", limiter.wrap("/prompts/analyze", ComponentHandler(a.promptAnalyze), tooManyComponents))
	handle("/api/analyze", limiter.wrap("/api/analyze", APIHandler(a.apiAnalyze), tooManyAPI))
	handle("/api/models", APIHandler(a.apiModels))
	handle("/api/prompts", APIHandler(a.apiPrompts))
	handle("/healthz", http.HandlerFunc(healthz))
	mux.Handle("/metrics", promhttp.Handler())

	return withRequestId(mux)
}

func allowed(r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	return false
}

func (a *App) analyze(prompt string) analyzer.Evaluation {
	ev := analyzer.Evaluate(prompt)

	promptAnalysesTotal.Inc()
	promptScores.Observe(float64(ev.Score))

	return ev
}

func (a *App) index(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	if r.URL.Path != "/" {
		return errorResponse(get404(), nil)
	} else if !allowed(r, http.MethodGet, http.MethodHead) {
		return errorResponse(get405(), nil)
	}

	idA, idB := a.ModelRepo.Defaults()

	modelA, err := a.ModelRepo.Find(idA)

	if err != nil {
		return errorResponse(get500(), err)
	}

	modelB, err := a.ModelRepo.Find(idB)

	if err != nil {
		return errorResponse(get500(), err)
	}

	return componentResponse(components.Index(components.IndexProps{
		Models:           a.ModelRepo.All(),
		CompareA:         *modelA,
		CompareB:         *modelB,
		PlaygroundPrompt: persistence.DefaultPlaygroundPrompt,
		Prompts:          a.PromptRepo.Search(""),
		Draft:            "",
		Analysis:         analyzer.Analyze(""),
		Pricing:          a.PricingRepo.All(),
		Year:             a.now().Year(),
	}))
}

func (a *App) compare(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	if !allowed(r, http.MethodGet) {
		return errorResponse(get405(), nil)
	}

	query := r.URL.Query()

	slot := query.Get("slot")
	if slot != "a" && slot != "b" {
		return errorResponse(get400(), fmt.Errorf("invalid compare slot %q", slot))
	}

	model, err := a.ModelRepo.Find(query.Get("model"))

	if errors.Is(err, persistence.ErrNotFound) {
		return errorResponse(get400(), err)
	} else if err != nil {
		return errorResponse(get500(), err)
	}

	return componentResponse(components.ComparePanel(slot, a.ModelRepo.All(), *model))
}

func (a *App) playgroundRun(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	if !allowed(r, http.MethodPost) {
		return errorResponse(get405(), nil)
	}

	err := r.ParseForm()

	if err != nil {
		return errorResponse(get400(), err)
	}

	var run *domain.Run
	run, err = a.RunRepo.Create(r.Context(), r.PostFormValue("prompt"))

	if err != nil {
		return errorResponse(get500(), err)
	}

	playgroundRunsTotal.Inc()
	slog.Info("playground run", "id", run.Id, "requestId", requestId(r.Context()))

	return componentResponse(components.PlaygroundResponse(run))
}

func (a *App) promptSearch(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	if !allowed(r, http.MethodGet) {
		return errorResponse(get405(), nil)
	}

	return componentResponse(components.PromptList(a.PromptRepo.Search(r.URL.Query().Get("q"))))
}

func (a *App) promptDraft(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	if !allowed(r, http.MethodGet) {
		return errorResponse(get405(), nil)
	}

	id, err := strconv.Atoi(r.URL.Query().Get("id"))

	if err != nil {
		return errorResponse(get400(), err)
	}

	var prompt *domain.Prompt
	prompt, err = a.PromptRepo.Find(id)

	if errors.Is(err, persistence.ErrNotFound) {
		return errorResponse(get404(), err)
	} else if err != nil {
		return errorResponse(get500(), err)
	}

	return componentResponse(components.Draft(prompt.Body, a.analyze(prompt.Body).PromptAnalysis))
}

func (a *App) promptAnalyze(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	if !allowed(r, http.MethodPost) {
		return errorResponse(get405(), nil)
	}

	err := r.ParseForm()

	if err != nil {
		return errorResponse(get400(), err)
	}

	return componentResponse(components.Analysis(a.analyze(r.PostFormValue("prompt")).PromptAnalysis))
}

func (a *App) apiAnalyze(w http.ResponseWriter, r *http.Request) *APIResponse {
	if !allowed(r, http.MethodPost) {
		return apiErrorResponse(get405(), nil)
	}

	content, err := Read(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	if err != nil {
		return apiErrorResponse(get400(), err)
	}

	var req *analyzeReq
	req, err = ReadJSON[analyzeReq](content)

	if err != nil {
		return apiErrorResponse(get400(), err)
	}

	return &APIResponse{Body: a.analyze(req.Prompt), Code: 200, Message: "OK"}
}

func (a *App) apiModels(w http.ResponseWriter, r *http.Request) *APIResponse {
	if !allowed(r, http.MethodGet) {
		return apiErrorResponse(get405(), nil)
	}

	return &APIResponse{Body: a.ModelRepo.All(), Code: 200, Message: "OK"}
}

func (a *App) apiPrompts(w http.ResponseWriter, r *http.Request) *APIResponse {
	if !allowed(r, http.MethodGet) {
		return apiErrorResponse(get405(), nil)
	}

	return &APIResponse{Body: a.PromptRepo.Search(r.URL.Query().Get("q")), Code: 200, Message: "OK"}
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
