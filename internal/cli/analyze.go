package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/felixbrock/myllmmodel/internal/analyzer"
	"github.com/spf13/cobra"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [prompt...]",
	Short: "Score a prompt and suggest improvements",
	Long: `Score a prompt between 0 and 15 and list what it is missing.

The prompt is taken from the arguments, joined by spaces, or read from
standard input when no arguments are given.

Example:
  myllmmodel analyze "Act as a reviewer. Given this diff, return bullets."
  cat prompt.txt | myllmmodel analyze --json`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the evaluation as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	prompt := strings.Join(args, " ")

	if len(args) == 0 {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		prompt = string(content)
	}

	ev := analyzer.Evaluate(prompt)
	out := cmd.OutOrStdout()

	if analyzeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(ev)
	}

	_, err := io.WriteString(out, report(lipgloss.NewRenderer(out), ev))
	return err
}

func report(r *lipgloss.Renderer, ev analyzer.Evaluation) string {
	label := r.NewStyle().Bold(true)
	muted := r.NewStyle().Foreground(lipgloss.Color("#666666"))
	tip := r.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	var b strings.Builder

	b.WriteString(label.Render("Quality Score") + " ")
	b.WriteString(scoreStyle(r, ev.Score).Render(fmt.Sprintf("%d/%d", ev.Score, analyzer.MaxScore)) + "\n")
	b.WriteString(muted.Render(fmt.Sprintf("words %d · length points %d · role %s · context %s · constraints %s · audience %s",
		ev.Words, ev.LengthPoints, mark(ev.Signals.Role), mark(ev.Signals.Context),
		mark(ev.Signals.Constraints), mark(ev.Signals.Audience))) + "\n")

	if len(ev.Tips) == 0 {
		b.WriteString(analyzer.Affirmation + "\n")
		return b.String()
	}

	for _, t := range ev.Tips {
		b.WriteString("  • " + tip.Render(t) + "\n")
	}

	return b.String()
}

func scoreStyle(r *lipgloss.Renderer, score int) lipgloss.Style {
	s := r.NewStyle().Bold(true)

	switch {
	case score >= 11:
		return s.Foreground(lipgloss.Color("#a8e6cf"))
	case score >= 6:
		return s.Foreground(lipgloss.Color("#ffe66d"))
	default:
		return s.Foreground(lipgloss.Color("#FF6B6B"))
	}
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}
