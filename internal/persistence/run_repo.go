package persistence

import (
	"context"
	"time"

	"github.com/felixbrock/myllmmodel/internal/domain"
	"github.com/google/uuid"
)

const (
	DefaultPlaygroundPrompt = "Act as a product marketer. Write a 50‑word hero subtitle for an LLM playground website in a confident, simple tone."

	CannedResponse = "Build, test, and compare AI models in minutes—not months. Run playful demos, refine prompts, and ship production‑ready workflows with clarity and control."

	RunStateCompleted = "completed"
)

// RunRepo answers playground runs. It never contacts a model and keeps no
// record of the runs it hands out.
type RunRepo struct {
	Response string
	Now      func() time.Time
}

func (r RunRepo) Create(ctx context.Context, prompt string) (*domain.Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	response := r.Response
	if response == "" {
		response = CannedResponse
	}

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	return &domain.Run{
		Id:       uuid.New().String(),
		Prompt:   prompt,
		Response: response,
		State:    RunStateCompleted,
		Created:  now().UTC(),
	}, nil
}
