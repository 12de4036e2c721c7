package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

type APIResponse struct {
	Error   error
	Message string
	Code    int
	Body    any
}

type apiError struct {
	Error string `json:"error"`
}

// APIHandler is the JSON counterpart of ComponentHandler. A non-nil Error
// replaces the body with {"error": Message}.
type APIHandler func(http.ResponseWriter, *http.Request) *APIResponse

func (h APIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h(w, r)

	code := resp.Code
	if code == 0 {
		code = http.StatusOK
	}

	body := resp.Body
	if resp.Error != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", resp.Error.Error()), "path", r.URL.Path, "requestId", requestId(r.Context()))
		body = apiError{Error: resp.Message}
	}

	content, err := json.Marshal(body)

	if err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()), "path", r.URL.Path)
		http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	_, err = w.Write(content)

	if err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()), "path", r.URL.Path)
	}
}

func apiErrorResponse(ctx errCtx, err error) *APIResponse {
	if err == nil {
		err = fmt.Errorf("%d %s", ctx.Code, ctx.Title)
	}
	return &APIResponse{Error: err, Message: ctx.Title, Code: ctx.Code}
}
