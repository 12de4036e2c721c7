package components

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/felixbrock/myllmmodel/internal/analyzer"
	"github.com/felixbrock/myllmmodel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testModels = []domain.Model{
	{Id: "m1", Name: "Model One", Family: "Acme", License: "Open", Released: "2024", Speed: 2, Cost: 5, Strengths: []string{"Fast"}},
	{Id: "m2", Name: "Model <Two>", Family: "Acme", License: "Proprietary", Released: "2024", Speed: 4, Cost: 1, Strengths: []string{"Cheap"}},
}

func render(t *testing.T, c templ.Component) string {
	t.Helper()

	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func TestRatingDots(t *testing.T) {
	html := render(t, RatingDots(3))

	assert.Equal(t, 3, strings.Count(html, "bg-white/90"))
	assert.Equal(t, 2, strings.Count(html, "bg-white/25"))
	assert.Contains(t, html, `aria-label="3/5"`)
}

func TestModelsEscapesNames(t *testing.T) {
	html := render(t, Models(testModels))

	assert.Contains(t, html, `id="models"`)
	assert.Contains(t, html, "Model &lt;Two&gt;")
	assert.NotContains(t, html, "Model <Two>")
	assert.Equal(t, 2, strings.Count(html, "data-model="))
}

func TestComparePanelSelectsModel(t *testing.T) {
	html := render(t, ComparePanel("b", testModels, testModels[1]))

	assert.Contains(t, html, `id="compare-b"`)
	assert.Contains(t, html, "Model B")
	assert.Contains(t, html, `hx-get="/compare?slot=b"`)
	assert.Contains(t, html, `value="m2" selected`)
	assert.NotContains(t, html, `value="m1" selected`)
}

func TestComparePanelEscapesSlot(t *testing.T) {
	html := render(t, ComparePanel(`b"><script>`, testModels, testModels[0]))

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, `hx-get="/compare?slot=b%22%3E%3Cscript%3E"`)
	assert.Contains(t, html, `id="compare-b&#34;&gt;&lt;script&gt;"`)
}

func TestSectionRendersChildren(t *testing.T) {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>body</p>")
		return err
	})

	var sb strings.Builder
	err := Section("docs", "Docs", "").Render(templ.WithChildren(context.Background(), body), &sb)
	require.NoError(t, err)

	html := sb.String()
	assert.Contains(t, html, `id="docs"`)
	assert.Contains(t, html, "<p>body</p></section>")
	assert.NotContains(t, html, "max-w-3xl")
}

func TestAnalysisTips(t *testing.T) {
	html := render(t, Analysis(analyzer.Analyze("hi")))

	assert.Contains(t, html, "0/15")
	assert.Equal(t, 4, strings.Count(html, "<li>"))
	assert.Contains(t, html, "Define a role (e.g., &#39;Act as a…&#39;).")
	assert.NotContains(t, html, analyzer.Affirmation)
}

func TestAnalysisAffirmation(t *testing.T) {
	html := render(t, Analysis(domain.PromptAnalysis{Score: 12, Tips: []string{}}))

	assert.Contains(t, html, "12/15")
	assert.Contains(t, html, analyzer.Affirmation)
	assert.NotContains(t, html, "<li>")
}

func TestPlaygroundResponse(t *testing.T) {
	assert.Contains(t, render(t, PlaygroundResponse(nil)), "—")

	html := render(t, PlaygroundResponse(&domain.Run{Id: "r1", Response: "hello & bye"}))
	assert.Contains(t, html, `data-run="r1"`)
	assert.Contains(t, html, "hello &amp; bye")
}

func TestPromptListUseButtons(t *testing.T) {
	html := render(t, PromptList([]domain.Prompt{
		{Id: 7, Title: "T", Body: "<script>", Tags: []string{"a", "b"}},
	}))

	assert.Contains(t, html, `hx-get="/prompts/draft?id=7"`)
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestIndexRendersEverySection(t *testing.T) {
	html := render(t, Index(IndexProps{
		Models:           testModels,
		CompareA:         testModels[0],
		CompareB:         testModels[1],
		PlaygroundPrompt: "Act as a marketer",
		Prompts:          []domain.Prompt{{Id: 1, Title: "Blog", Body: "b", Tags: []string{"writing"}}},
		Draft:            "",
		Analysis:         analyzer.Analyze(""),
		Pricing:          []domain.PricingTier{{Name: "Starter", Price: "Free", Description: "d", Cta: "Go"}},
		Year:             2031,
	}))

	for _, id := range []string{"models", "compare", "playground", "prompts", "pricing"} {
		assert.Contains(t, html, `id="`+id+`"`)
	}
	assert.Contains(t, html, "© 2031 myllmmodel.com")
	assert.Contains(t, html, "Prompt is empty")
	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRenderStopsOnWriteError(t *testing.T) {
	err := Pricing([]domain.PricingTier{{Name: "Starter"}}).Render(context.Background(), failingWriter{})

	assert.EqualError(t, err, "closed")
}

func TestErrorComponent(t *testing.T) {
	html := render(t, Error(429, "Too many requests", "Slow down"))

	assert.Contains(t, html, `data-code="429"`)
	assert.Contains(t, html, "Too many requests")
}
