package persistence

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/felixbrock/myllmmodel/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

var ErrNotFound = errors.New("record not found")

type Catalog struct {
	Models  []domain.Model       `yaml:"models"`
	Prompts []domain.Prompt      `yaml:"prompts"`
	Pricing []domain.PricingTier `yaml:"pricing"`
}

// NewCatalog decodes the catalog shipped with the binary.
func NewCatalog() (*Catalog, error) {
	return LoadCatalog(bytes.NewReader(catalogYAML))
}

func LoadCatalog(r io.Reader) (*Catalog, error) {
	var c Catalog

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	err := dec.Decode(&c)

	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	err = c.validate()

	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Catalog) validate() error {
	modelIds := make(map[string]bool, len(c.Models))
	for _, m := range c.Models {
		if m.Id == "" {
			return fmt.Errorf("model %q has no id", m.Name)
		} else if modelIds[m.Id] {
			return fmt.Errorf("duplicate model id %q", m.Id)
		}
		modelIds[m.Id] = true

		if m.Speed < 1 || m.Speed > 5 || m.Cost < 1 || m.Cost > 5 {
			return fmt.Errorf("model %q: speed and cost must be within 1..5", m.Id)
		}
	}

	promptIds := make(map[int]bool, len(c.Prompts))
	for _, p := range c.Prompts {
		if promptIds[p.Id] {
			return fmt.Errorf("duplicate prompt id %d", p.Id)
		}
		promptIds[p.Id] = true
	}

	return nil
}
