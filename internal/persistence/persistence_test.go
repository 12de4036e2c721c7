package persistence

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	c, err := NewCatalog()
	require.NoError(t, err)
	return c
}

func TestNewCatalog(t *testing.T) {
	c := loadTestCatalog(t)

	assert.Len(t, c.Models, 4)
	assert.Len(t, c.Prompts, 3)
	assert.Len(t, c.Pricing, 3)
	assert.Equal(t, "gpt-4o", c.Models[0].Id)
	assert.Equal(t, []string{"Reasoning", "Tool Use", "Multimodal"}, c.Models[0].Strengths)
	assert.Equal(t, "$19/mo", c.Pricing[1].Price)
}

func TestLoadCatalogRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"duplicate model":  "models:\n  - {id: a, speed: 1, cost: 1}\n  - {id: a, speed: 1, cost: 1}\n",
		"rating range":     "models:\n  - {id: a, speed: 6, cost: 1}\n",
		"missing id":       "models:\n  - {name: A, speed: 1, cost: 1}\n",
		"duplicate prompt": "prompts:\n  - {id: 1, title: a}\n  - {id: 1, title: b}\n",
		"unknown field":    "models:\n  - {id: a, speed: 1, cost: 1, colour: red}\n",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadCatalog(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadCatalogEmpty(t *testing.T) {
	c, err := LoadCatalog(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, c.Models)
}

func TestModelRepoFind(t *testing.T) {
	repo := ModelRepo{Models: loadTestCatalog(t).Models}

	m, err := repo.Find("llama-3.1-70b")
	require.NoError(t, err)
	assert.Equal(t, "Meta", m.Family)

	_, err = repo.Find("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestModelRepoDefaults(t *testing.T) {
	repo := ModelRepo{Models: loadTestCatalog(t).Models}

	a, b := repo.Defaults()
	assert.Equal(t, "gpt-4o", a)
	assert.Equal(t, "llama-3.1-70b", b)

	a, b = ModelRepo{Models: repo.Models[:1]}.Defaults()
	assert.Equal(t, "gpt-4o", a)
	assert.Equal(t, "gpt-4o", b)

	a, b = ModelRepo{}.Defaults()
	assert.Empty(t, a)
	assert.Empty(t, b)
}

func TestModelRepoAllIsACopy(t *testing.T) {
	repo := ModelRepo{Models: loadTestCatalog(t).Models}

	all := repo.All()
	all[0].Name = "changed"

	assert.NotEqual(t, "changed", repo.Models[0].Name)
}

func TestPromptRepoSearch(t *testing.T) {
	repo := PromptRepo{Prompts: loadTestCatalog(t).Prompts}

	titles := func(q string) []string {
		var out []string
		for _, p := range repo.Search(q) {
			out = append(out, p.Title)
		}
		return out
	}

	assert.Equal(t, []string{"Blog Outliner", "Code Reviewer", "UX Feedback Bot"}, titles(""))
	assert.Equal(t, []string{"UX Feedback Bot"}, titles("UX"))
	assert.Equal(t, []string{"Code Reviewer"}, titles("code"))
	assert.Equal(t, []string{"Blog Outliner"}, titles("writ"))
	assert.Equal(t, []string{"Code Reviewer"}, titles("engineering"))
	assert.Empty(t, titles("quantum"))
	assert.NotNil(t, repo.Search("quantum"))
}

func TestRunRepoCreate(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := RunRepo{Now: func() time.Time { return fixed }}

	for _, prompt := range []string{"", DefaultPlaygroundPrompt, "anything at all"} {
		run, err := repo.Create(context.Background(), prompt)

		require.NoError(t, err)
		assert.Equal(t, CannedResponse, run.Response)
		assert.Equal(t, prompt, run.Prompt)
		assert.Equal(t, RunStateCompleted, run.State)
		assert.Equal(t, fixed, run.Created)
		_, err = uuid.Parse(run.Id)
		assert.NoError(t, err)
	}
}

func TestRunRepoCreateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunRepo{}.Create(ctx, "hi")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestPromptRepoFind(t *testing.T) {
	repo := PromptRepo{Prompts: loadTestCatalog(t).Prompts}

	p, err := repo.Find(2)
	require.NoError(t, err)
	assert.Equal(t, "Code Reviewer", p.Title)

	_, err = repo.Find(42)
	assert.ErrorIs(t, err, ErrNotFound)
}
