// Package components renders the landing page and the fragments htmx swaps
// into it. Markup lives in the .templ files; run `templ generate` after
// editing them.
package components

//go:generate templ generate

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/felixbrock/myllmmodel/internal/analyzer"
	"github.com/felixbrock/myllmmodel/internal/domain"
)

type IndexProps struct {
	Models           []domain.Model
	CompareA         domain.Model
	CompareB         domain.Model
	PlaygroundPrompt string
	Prompts          []domain.Prompt
	Draft            string
	Analysis         domain.PromptAnalysis
	Pricing          []domain.PricingTier
	Year             int
}

type link struct {
	Href  string
	Label string
}

var navLinks = []link{
	{"#models", "Models"},
	{"#compare", "Compare"},
	{"#playground", "Playground"},
	{"#prompts", "Prompts"},
	{"#pricing", "Pricing"},
}

var footerLinks = []link{
	{"#models", "Models"},
	{"#compare", "Compare"},
	{"#prompts", "Prompts"},
	{"#pricing", "Pricing"},
	{"#docs", "Docs"},
}

// compareURL is the hx-get target of a comparator panel.
func compareURL(slot string) string {
	return string(templ.URL("/compare?slot=" + url.QueryEscape(slot)))
}

func draftURL(id int) string {
	return string(templ.URL("/prompts/draft?id=" + strconv.Itoa(id)))
}

func slotLabel(slot string) string {
	if slot == "b" {
		return "Model B"
	}
	return "Model A"
}

func ratingLabel(n int) string {
	return strconv.Itoa(n) + "/5"
}

func scoreLabel(score int) string {
	return strconv.Itoa(score) + "/" + strconv.Itoa(analyzer.MaxScore)
}

func modelMeta(parts ...string) string {
	return strings.Join(parts, " • ")
}

// responseText is the playground output, or a dash before the first run.
func responseText(run *domain.Run) string {
	if run == nil || run.Response == "" {
		return "—"
	}
	return run.Response
}
