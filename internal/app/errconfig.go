package app

import (
	"github.com/felixbrock/myllmmodel/internal/components"
)

type errCtx struct {
	Code  int
	Title string
	Msg   string
}

func get400() errCtx {
	return errCtx{
		Code:  400,
		Title: "Bad request",
		Msg:   "Sorry, we couldn't make sense of that request.",
	}
}

func get404() errCtx {
	return errCtx{
		Code:  404,
		Title: "Not found",
		Msg:   "Sorry, we couldn't find the page you were looking for.",
	}
}

func get405() errCtx {
	return errCtx{
		Code:  405,
		Title: "Method not allowed",
		Msg:   "Sorry, this page doesn't support that method.",
	}
}

func get429() errCtx {
	return errCtx{
		Code:  429,
		Title: "Too many requests",
		Msg:   "Slow down a little and try again in a moment.",
	}
}

func get500() errCtx {
	return errCtx{
		Code:  500,
		Title: "Internal server error",
		Msg:   "Sorry, there was an internal server error.",
	}
}

// errorResponse renders ctx through the Error component. err is only logged.
func errorResponse(ctx errCtx, err error) *ComponentResponse {
	return &ComponentResponse{
		Error:       err,
		Message:     ctx.Title,
		Code:        ctx.Code,
		ContentType: "text/html; charset=utf-8",
		Component:   components.Error(ctx.Code, ctx.Title, ctx.Msg),
	}
}
