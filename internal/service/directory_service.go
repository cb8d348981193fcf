package service

import (
	"context"
	"time"

	"verzeichnis/internal/config"
	"verzeichnis/internal/domain"
	"verzeichnis/internal/pagination"
	"verzeichnis/internal/repository"

	"go.uber.org/zap"
)

// Error messages placed in failure envelopes. Deliberately generic:
// store errors are logged with full detail but never leak past the
// service boundary.
const (
	ErrMsgSearchUnavailable     = "search is temporarily unavailable"
	ErrMsgCategoriesUnavailable = "categories are temporarily unavailable"
	ErrMsgEventsUnavailable     = "events are temporarily unavailable"
	ErrMsgBusinessNotFound      = "business not found"
	ErrMsgStatsUnavailable      = "statistics are temporarily unavailable"
)

// DefaultFeaturedLimit is the homepage featured-businesses count.
const DefaultFeaturedLimit = 6

// DirectoryService is the inbound contract consumed by the UI layer.
// Every method returns a uniform envelope and never propagates an
// error: a store failure degrades to success=false with an error
// message, distinguishable from an empty result.
type DirectoryService interface {
	SearchBusinesses(ctx context.Context, query, categoryID string, filters domain.SearchFilters) domain.PageEnvelope[domain.SearchResult]
	CategoriesWithCounts(ctx context.Context) domain.Response[[]*domain.CategoryWithCount]
	UpcomingEvents(ctx context.Context, limit, offset int) domain.PageEnvelope[*domain.Event]
	EventsByDate(ctx context.Context, from, to time.Time) domain.Response[[]*domain.Event]
	FeaturedBusinesses(ctx context.Context, limit int) domain.Response[[]*domain.BusinessProfile]
	BusinessBySlug(ctx context.Context, slug string) domain.Response[*domain.BusinessProfile]
	HomepageStats(ctx context.Context) domain.Response[*repository.Stats]
}

type directoryService struct {
	businessRepo repository.BusinessRepository
	categoryRepo repository.CategoryRepository
	eventRepo    repository.EventRepository
	statsRepo    repository.StatsRepository
	pageCfg      config.PaginationConfig
	logger       *zap.Logger
	now          func() time.Time
}

// NewDirectoryService creates a new instance of DirectoryService
func NewDirectoryService(
	businessRepo repository.BusinessRepository,
	categoryRepo repository.CategoryRepository,
	eventRepo repository.EventRepository,
	statsRepo repository.StatsRepository,
	pageCfg config.PaginationConfig,
	logger *zap.Logger,
) DirectoryService {
	return &directoryService{
		businessRepo: businessRepo,
		categoryRepo: categoryRepo,
		eventRepo:    eventRepo,
		statsRepo:    statsRepo,
		pageCfg:      pageCfg,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// SearchBusinesses resolves a free-text query plus optional category and
// tier filters into a paginated, scored page of results. An empty query
// means "no text filter". Page and page size are clamped server-side.
func (s *directoryService) SearchBusinesses(ctx context.Context, query, categoryID string, filters domain.SearchFilters) domain.PageEnvelope[domain.SearchResult] {
	rng := pagination.FromPage(filters.Page, filters.PageSize, s.pageCfg.DefaultPageSize, s.pageCfg.MaxPageSize)

	sortBy := filters.SortBy
	if sortBy == "" {
		sortBy = domain.SortRelevance
	}

	businesses, total, err := s.businessRepo.Search(ctx, repository.BusinessSearchParams{
		Query:            query,
		CategoryID:       categoryID,
		SubscriptionTier: filters.SubscriptionTier,
		SortBy:           sortBy,
		Offset:           rng.Offset,
		Limit:            rng.Size,
	})
	if err != nil {
		s.logger.Error("Business search failed",
			zap.Error(err),
			zap.String("query", query),
			zap.String("category_id", categoryID),
		)
		return domain.EmptyPage[domain.SearchResult](rng.Page, rng.Size, ErrMsgSearchUnavailable)
	}

	hadQuery := query != ""
	results := make([]domain.SearchResult, 0, len(businesses))
	for _, b := range businesses {
		results = append(results, domain.NewSearchResult(b, hadQuery))
	}

	return domain.PageEnvelope[domain.SearchResult]{
		Success:  true,
		Data:     results,
		Total:    total,
		Page:     rng.Page,
		PageSize: rng.Size,
		HasMore:  rng.HasMore(total),
	}
}

// CategoriesWithCounts returns every category that has at least one
// verified business, sorted by name, with its live business count.
func (s *directoryService) CategoriesWithCounts(ctx context.Context) domain.Response[[]*domain.CategoryWithCount] {
	categories, err := s.categoryRepo.ListWithCounts(ctx)
	if err != nil {
		s.logger.Error("Category aggregation failed", zap.Error(err))
		return domain.Fail[[]*domain.CategoryWithCount](ErrMsgCategoriesUnavailable)
	}
	return domain.OK(categories)
}

// UpcomingEvents returns published events starting at or after the
// current wall-clock time, soonest first. "Now" is re-evaluated on
// every call; an event that has started since the last call drops out.
func (s *directoryService) UpcomingEvents(ctx context.Context, limit, offset int) domain.PageEnvelope[*domain.Event] {
	rng := pagination.FromOffset(offset, limit, s.pageCfg.DefaultPageSize, s.pageCfg.MaxPageSize)

	events, total, err := s.eventRepo.ListUpcoming(ctx, s.now(), rng.Size, rng.Offset)
	if err != nil {
		s.logger.Error("Upcoming events query failed", zap.Error(err))
		return domain.EmptyPage[*domain.Event](rng.Page, rng.Size, ErrMsgEventsUnavailable)
	}

	return domain.PageEnvelope[*domain.Event]{
		Success:  true,
		Data:     events,
		Total:    total,
		Page:     rng.Page,
		PageSize: rng.Size,
		HasMore:  rng.HasMore(total),
	}
}

// EventsByDate returns published events starting within the given
// window, for the calendar view.
func (s *directoryService) EventsByDate(ctx context.Context, from, to time.Time) domain.Response[[]*domain.Event] {
	events, err := s.eventRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		s.logger.Error("Events by date query failed", zap.Error(err))
		return domain.Fail[[]*domain.Event](ErrMsgEventsUnavailable)
	}
	return domain.OK(events)
}

// FeaturedBusinesses returns the newest verified premium businesses for
// the homepage.
func (s *directoryService) FeaturedBusinesses(ctx context.Context, limit int) domain.Response[[]*domain.BusinessProfile] {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	if limit > s.pageCfg.MaxPageSize {
		limit = s.pageCfg.MaxPageSize
	}

	businesses, err := s.businessRepo.ListFeatured(ctx, limit)
	if err != nil {
		s.logger.Error("Featured businesses query failed", zap.Error(err))
		return domain.Fail[[]*domain.BusinessProfile](ErrMsgSearchUnavailable)
	}
	return domain.OK(businesses)
}

// BusinessBySlug returns a single verified business for its public
// profile page.
func (s *directoryService) BusinessBySlug(ctx context.Context, slug string) domain.Response[*domain.BusinessProfile] {
	business, err := s.businessRepo.FindBySlug(ctx, slug)
	if err != nil {
		if err == repository.ErrBusinessNotFound {
			return domain.Fail[*domain.BusinessProfile](ErrMsgBusinessNotFound)
		}
		s.logger.Error("Business lookup failed", zap.Error(err), zap.String("slug", slug))
		return domain.Fail[*domain.BusinessProfile](ErrMsgSearchUnavailable)
	}
	return domain.OK(business)
}

// HomepageStats returns the directory-wide counters for the hero section.
func (s *directoryService) HomepageStats(ctx context.Context) domain.Response[*repository.Stats] {
	stats, err := s.statsRepo.Counts(ctx)
	if err != nil {
		s.logger.Error("Stats query failed", zap.Error(err))
		return domain.Fail[*repository.Stats](ErrMsgStatsUnavailable)
	}
	return domain.OK(stats)
}
