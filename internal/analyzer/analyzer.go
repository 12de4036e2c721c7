// Package analyzer scores prompts with a keyword heuristic. It never calls a
// model; the score only reflects length and the presence of a few phrases.
package analyzer

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/felixbrock/myllmmodel/internal/domain"
)

const (
	MaxScore = 15

	maxLengthPoints = 10
	wordsPerPoint   = 25
	minDetailWords  = 20
)

const (
	TipEmpty       = "Prompt is empty"
	TipDetail      = "Add more detail and context."
	TipRole        = "Define a role (e.g., 'Act as a…')."
	TipConstraints = "Specify output format or constraints."
	TipContext     = "Provide concrete inputs or references."

	// Affirmation is shown by callers in place of an empty tip list.
	Affirmation = "Looks solid. Try adding examples or edge cases."
)

var (
	roleExp        = regexp.MustCompile(`(?i)act as|you are|role-?play`)
	contextExp     = regexp.MustCompile(`(?i)given|based on|using|about|for the following`)
	constraintsExp = regexp.MustCompile(`(?i)return|format|limit|bullets|steps|json|markdown`)
	audienceExp    = regexp.MustCompile(`(?i)for (developers|designers|students|executives|beginners)`)
)

type Signals struct {
	Role        bool `json:"role"`
	Context     bool `json:"context"`
	Constraints bool `json:"constraints"`
	Audience    bool `json:"audience"`
}

// Evaluation carries the intermediate values that produced a PromptAnalysis.
type Evaluation struct {
	domain.PromptAnalysis
	Words        int     `json:"words"`
	LengthPoints int     `json:"lengthPoints"`
	Signals      Signals `json:"signals"`
}

func Analyze(text string) domain.PromptAnalysis {
	return Evaluate(text).PromptAnalysis
}

func Evaluate(text string) Evaluation {
	s := strings.TrimFunc(text, isSpace)
	if s == "" {
		return Evaluation{PromptAnalysis: domain.PromptAnalysis{Score: 0, Tips: []string{TipEmpty}}}
	}

	words := len(strings.FieldsFunc(s, isSpace))
	signals := Detect(s)
	lengthPoints := min(maxLengthPoints, int(math.Round(float64(words)/wordsPerPoint)))

	score := lengthPoints + weight(signals.Role, 2) + weight(signals.Context, 2) +
		weight(signals.Constraints, 2) + weight(signals.Audience, 1)

	// Audience only feeds the score.
	tips := []string{}
	if words < minDetailWords {
		tips = append(tips, TipDetail)
	}
	if !signals.Role {
		tips = append(tips, TipRole)
	}
	if !signals.Constraints {
		tips = append(tips, TipConstraints)
	}
	if !signals.Context {
		tips = append(tips, TipContext)
	}

	return Evaluation{
		PromptAnalysis: domain.PromptAnalysis{Score: min(MaxScore, score), Tips: tips},
		Words:          words,
		LengthPoints:   lengthPoints,
		Signals:        signals,
	}
}

// Detect reports which phrase families occur anywhere in s. Matching is
// case-insensitive and ignores word boundaries.
func Detect(s string) Signals {
	return Signals{
		Role:        roleExp.MatchString(s),
		Context:     contextExp.MatchString(s),
		Constraints: constraintsExp.MatchString(s),
		Audience:    audienceExp.MatchString(s),
	}
}

func weight(ok bool, points int) int {
	if ok {
		return points
	}
	return 0
}

// isSpace matches the whitespace set browsers use for \s: Unicode White_Space
// without NEL, plus the byte order mark.
func isSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.Is(unicode.White_Space, r)
}
