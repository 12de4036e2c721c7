package domain

import "time"

type Model struct {
	Id        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Family    string   `json:"family" yaml:"family"`
	Params    string   `json:"params" yaml:"params"`
	License   string   `json:"license" yaml:"license"`
	Released  string   `json:"released" yaml:"released"`
	Speed     int      `json:"speed" yaml:"speed"`
	Cost      int      `json:"cost" yaml:"cost"`
	Strengths []string `json:"strengths" yaml:"strengths"`
}

type Prompt struct {
	Id    int      `json:"id" yaml:"id"`
	Title string   `json:"title" yaml:"title"`
	Body  string   `json:"body" yaml:"body"`
	Tags  []string `json:"tags" yaml:"tags"`
}

type PricingTier struct {
	Name        string `json:"name" yaml:"name"`
	Price       string `json:"price" yaml:"price"`
	Description string `json:"description" yaml:"description"`
	Cta         string `json:"cta" yaml:"cta"`
}

// PromptAnalysis is the outcome of scoring a single prompt. Tips are kept in
// the order the checks ran.
type PromptAnalysis struct {
	Score int      `json:"score"`
	Tips  []string `json:"tips"`
}

type Run struct {
	Id       string    `json:"id"`
	Prompt   string    `json:"prompt"`
	Response string    `json:"response"`
	State    string    `json:"state"`
	Created  time.Time `json:"created"`
}
