package persistence

import (
	"fmt"
	"slices"
	"strings"

	"github.com/felixbrock/myllmmodel/internal/domain"
)

type PromptRepo struct {
	Prompts []domain.Prompt
}

func (r PromptRepo) All() []domain.Prompt {
	return slices.Clone(r.Prompts)
}

// Search keeps catalog order. The query is lower-cased and matched against
// the lower-cased title and against the tags as stored.
func (r PromptRepo) Search(query string) []domain.Prompt {
	q := strings.ToLower(query)

	records := []domain.Prompt{}
	for _, p := range r.Prompts {
		if strings.Contains(strings.ToLower(p.Title), q) || slices.ContainsFunc(p.Tags, func(t string) bool {
			return strings.Contains(t, q)
		}) {
			records = append(records, p)
		}
	}

	return records
}

func (r PromptRepo) Find(id int) (*domain.Prompt, error) {
	i := slices.IndexFunc(r.Prompts, func(p domain.Prompt) bool { return p.Id == id })

	if i < 0 {
		return nil, fmt.Errorf("prompt %d: %w", id, ErrNotFound)
	}

	p := r.Prompts[i]
	return &p, nil
}
