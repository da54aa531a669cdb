package service

import (
	"context"
	"fmt"

	"github.com/nossumusTM/vinvinio-sub003/internal/model"
)

// tierSpec declares which filter dimensions one relaxation step keeps active.
// The approved-status filter is implicit in every tier.
type tierSpec struct {
	Tier         model.QueryTier
	Keywords     bool
	Category     bool
	Location     bool
	Availability bool
	Capacity     bool
}

// tierPlan is the relaxation cascade, strictest first. Each step drops one
// more dimension; location_only is skipped entirely when no location
// resolved.
var tierPlan = []tierSpec{
	{Tier: model.TierStrict, Keywords: true, Category: true, Location: true, Availability: true, Capacity: true},
	{Tier: model.TierNoAvailability, Keywords: true, Category: true, Location: true, Capacity: true},
	{Tier: model.TierNoGuests, Keywords: true, Category: true, Location: true},
	{Tier: model.TierNoCategory, Keywords: true, Location: true},
	{Tier: model.TierLocationOnly, Location: true},
}

// runTiers executes the cascade against the catalog, one tier at a time,
// stopping at the first non-empty result. An empty tier name in the return
// means every tier came back empty. Catalog errors are not retried and not
// swallowed.
func (s *ChatService) runTiers(ctx context.Context, criteria model.Memory) (model.QueryTier, []model.Listing, error) {
	for _, spec := range tierPlan {
		if spec.Tier == model.TierLocationOnly && criteria.Location == nil {
			continue
		}
		filter := buildFilterSet(criteria, spec, s.candidateCap)
		listings, err := s.catalog.Search(ctx, filter)
		if err != nil {
			return "", nil, fmt.Errorf("catalog query (%s): %w", spec.Tier, err)
		}
		if len(listings) > 0 {
			return spec.Tier, listings, nil
		}
	}
	return "", nil, nil
}

func buildFilterSet(criteria model.Memory, spec tierSpec, cap int) model.FilterSet {
	f := model.FilterSet{
		MatchKeywords:     spec.Keywords,
		MatchCategory:     spec.Category,
		MatchLocation:     spec.Location,
		MatchAvailability: spec.Availability,
		MatchCapacity:     spec.Capacity,
		Limit:             cap,
	}
	if spec.Keywords {
		f.Keywords = criteria.Keywords
	}
	if spec.Category {
		f.Category = criteria.Category
	}
	if spec.Location {
		f.Location = criteria.Location
	}
	if spec.Availability {
		f.Dates = criteria.Dates
	}
	if spec.Capacity {
		f.GuestCount = criteria.GuestCount
	}
	return f
}
