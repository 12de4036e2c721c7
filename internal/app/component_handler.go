package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
)

type ComponentResponse struct {
	Error       error
	Message     string
	Code        int
	ContentType string
	Component   templ.Component
}

type ComponentHandler func(http.ResponseWriter, *http.Request) *ComponentResponse

func (ch ComponentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := ch(w, r)

	if resp.Error != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", resp.Error.Error()), "path", r.URL.Path, "requestId", requestId(r.Context()))
	}

	code := resp.Code
	if code == 0 {
		code = http.StatusOK
	}

	// Overwrite error code to allow for component rendering on client
	if isHTMX(r) && code >= 400 {
		code = http.StatusOK
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = "text/html; charset=utf-8"
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(code)

	if r.Method == http.MethodHead {
		return
	}

	err := resp.Component.Render(r.Context(), w)

	if err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()), "path", r.URL.Path, "requestId", requestId(r.Context()))
	}
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

func componentResponse(c templ.Component) *ComponentResponse {
	return &ComponentResponse{Component: c, Code: 200, Message: "OK", ContentType: "text/html; charset=utf-8"}
}
