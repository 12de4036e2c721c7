package persistence

import (
	"fmt"
	"slices"

	"github.com/felixbrock/myllmmodel/internal/domain"
)

type ModelRepo struct {
	Models []domain.Model
}

func (r ModelRepo) All() []domain.Model {
	return slices.Clone(r.Models)
}

func (r ModelRepo) Find(id string) (*domain.Model, error) {
	i := slices.IndexFunc(r.Models, func(m domain.Model) bool { return m.Id == id })

	if i < 0 {
		return nil, fmt.Errorf("model %q: %w", id, ErrNotFound)
	}

	m := r.Models[i]
	return &m, nil
}

// Defaults returns the pair preselected in the comparator: the first and the
// third model, or the last one when fewer than three exist.
func (r ModelRepo) Defaults() (a string, b string) {
	if len(r.Models) == 0 {
		return "", ""
	}

	a = r.Models[0].Id
	b = r.Models[min(2, len(r.Models)-1)].Id
	return a, b
}
