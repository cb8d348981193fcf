package domain

// Relevance scores attached to search results. These are coarse
// boosted/unboosted markers, not a ranking function: 0.9 when the
// caller supplied a text query, 0.7 otherwise.
const (
	RelevanceWithQuery    = 0.9
	RelevanceWithoutQuery = 0.7
)

// SortMode controls the ordering of business search results.
type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortNewest    SortMode = "newest"
	// SortPopular currently aliases SortNewest: the data model carries
	// no popularity signal yet.
	// TODO: order by rating average once ratings are enabled.
	SortPopular SortMode = "popular"
)

// SearchFilters are the optional knobs on a business search.
type SearchFilters struct {
	SubscriptionTier SubscriptionTier
	SortBy           SortMode
	Page             int
	PageSize         int
}

// SearchResult is the per-query projection of a BusinessProfile
// returned to the UI layer. Constructed per query, never stored.
type SearchResult struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	ImageURL       string  `json:"image_url,omitempty"`
	RelevanceScore float64 `json:"relevance_score"`
}

// NewSearchResult projects a business profile for a search response.
// hadQuery records whether a text query narrowed the result.
func NewSearchResult(b *BusinessProfile, hadQuery bool) SearchResult {
	score := RelevanceWithoutQuery
	if hadQuery {
		score = RelevanceWithQuery
	}
	return SearchResult{
		ID:             b.ID.String(),
		Name:           b.Name,
		Description:    b.Description,
		Category:       b.PrimaryCategory(),
		ImageURL:       b.LogoURL,
		RelevanceScore: score,
	}
}
