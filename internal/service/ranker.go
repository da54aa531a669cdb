package service

import (
	"sort"
	"strings"

	"github.com/nossumusTM/vinvinio-sub003/internal/config"
	"github.com/nossumusTM/vinvinio-sub003/internal/model"
)

// Ranker scores candidates against the resolved criteria with a fixed
// additive function. The weights are empirical constants; they live in config
// so operators can retune without a deploy.
type Ranker struct {
	w config.RankingConfig
}

// NewRanker creates a ranker with the given weights
func NewRanker(weights config.RankingConfig) *Ranker {
	return &Ranker{w: weights}
}

// RankedListing is a candidate with its computed score.
type RankedListing struct {
	model.Listing
	Score float64
}

// Rank scores every candidate and sorts descending. Ties break on boost, then
// rating, then review count; past that the catalog order is preserved.
func (r *Ranker) Rank(listings []model.Listing, criteria model.Memory) []RankedListing {
	ranked := make([]RankedListing, 0, len(listings))
	for _, l := range listings {
		ranked = append(ranked, RankedListing{Listing: l, Score: r.score(l, criteria)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.VinPoints != b.VinPoints {
			return a.VinPoints > b.VinPoints
		}
		if a.AvgRating != b.AvgRating {
			return a.AvgRating > b.AvgRating
		}
		if a.ReviewCount != b.ReviewCount {
			return a.ReviewCount > b.ReviewCount
		}
		return false
	})

	return ranked
}

func (r *Ranker) score(l model.Listing, criteria model.Memory) float64 {
	score := 0.0

	if criteria.Category != nil && strings.EqualFold(l.Category, *criteria.Category) {
		score += r.w.CategoryMatch
	}

	location := strings.ToLower(l.LocationValue)
	if criteria.Location != nil && strings.Contains(location, strings.ToLower(*criteria.Location)) {
		score += r.w.LocationMatch
	}

	title := strings.ToLower(l.Title)
	description := strings.ToLower(l.Description)
	for _, kw := range criteria.Keywords {
		if strings.Contains(title, kw) {
			score += r.w.KeywordTitle
		}
		if strings.Contains(description, kw) {
			score += r.w.KeywordDescription
		}
		if strings.Contains(location, kw) {
			score += r.w.KeywordLocation
		}
	}

	if criteria.GuestCount != nil && l.GuestCapacity >= *criteria.GuestCount {
		score += r.w.CapacityFit
	}

	if r.w.BoostDivisor > 0 {
		score += l.VinPoints / r.w.BoostDivisor
	}
	score += l.AvgRating * r.w.RatingMultiplier

	reviews := l.ReviewCount
	if reviews > r.w.ReviewCap {
		reviews = r.w.ReviewCap
	}
	score += float64(reviews) * r.w.ReviewWeight

	return score
}

// paginate slices a ranked list by offset/limit. hasMore reports whether more
// results exist past this page.
func paginate(ranked []RankedListing, offset, limit int) (page []RankedListing, hasMore bool) {
	total := len(ranked)
	if offset >= total {
		return nil, false
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return ranked[offset:end], end < total
}
