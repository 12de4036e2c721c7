package persistence

import (
	"slices"

	"github.com/felixbrock/myllmmodel/internal/domain"
)

type PricingRepo struct {
	Tiers []domain.PricingTier
}

func (r PricingRepo) All() []domain.PricingTier {
	return slices.Clone(r.Tiers)
}
