package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/felixbrock/myllmmodel/internal/analyzer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()

	analyzeJSON = false
	t.Cleanup(func() {
		analyzeJSON = false
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
	})

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestAnalyzeArgs(t *testing.T) {
	out := execute(t, "", "analyze", "hi")

	assert.Contains(t, out, "0/15")
	for _, tip := range []string{analyzer.TipDetail, analyzer.TipRole, analyzer.TipConstraints, analyzer.TipContext} {
		assert.Contains(t, out, tip)
	}
}

func TestAnalyzeStdinJSON(t *testing.T) {
	out := execute(t, strings.Repeat("word ", 300), "analyze", "--json")

	var ev analyzer.Evaluation
	require.NoError(t, json.Unmarshal([]byte(out), &ev))

	assert.Equal(t, 10, ev.Score)
	assert.Equal(t, 300, ev.Words)
	assert.Equal(t, []string{analyzer.TipRole, analyzer.TipConstraints, analyzer.TipContext}, ev.Tips)
}

func TestAnalyzeAffirmation(t *testing.T) {
	prompt := "You are a patient tutor. Based on the attached notes about recursion, explain the idea " +
		"in five short steps and return the answer as markdown bullets for students."

	out := execute(t, prompt, "analyze")

	assert.Contains(t, out, "8/15")
	assert.Contains(t, out, analyzer.Affirmation)
}

func TestAnalyzeEmptyStdin(t *testing.T) {
	out := execute(t, "  \n", "analyze")

	assert.Contains(t, out, "0/15")
	assert.Contains(t, out, analyzer.TipEmpty)
}
