package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/flight-alert/flight-alert-service/internal/domain"
	"github.com/flight-alert/flight-alert-service/internal/infrastructure/logger"
)

// DefaultTTL is how long a search result stays cached.
const DefaultTTL = 10 * time.Minute

// Searcher is a read-through cache in front of another AirportSearcher.
// Only successful results are cached; cache failures fall through to the
// wrapped searcher.
type Searcher struct {
	next  domain.AirportSearcher
	cache Cache
	ttl   time.Duration
	log   *logger.Logger
}

// NewSearcher wraps next with c. A non-positive ttl uses DefaultTTL.
func NewSearcher(next domain.AirportSearcher, c Cache, ttl time.Duration, log *logger.Logger) *Searcher {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Searcher{
		next:  next,
		cache: c,
		ttl:   ttl,
		log:   logger.OrNop(log).WithComponent("cache"),
	}
}

// Key returns the cache key of a search.
func Key(params domain.SearchParams) string {
	params = params.WithDefaults()
	query := strings.ToLower(strings.TrimSpace(params.Query))
	return fmt.Sprintf("airports:%d:%d:%s", params.Limit, params.Page, query)
}

// Search returns the cached result for params, or queries the wrapped searcher.
func (s *Searcher) Search(ctx context.Context, params domain.SearchParams) ([]domain.Airport, error) {
	key := Key(params)

	if airports, ok := s.lookup(ctx, key); ok {
		return airports, nil
	}

	airports, err := s.next.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	s.store(ctx, key, airports)
	return airports, nil
}

func (s *Searcher) lookup(ctx context.Context, key string) ([]domain.Airport, bool) {
	val, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			s.log.Warn().Err(err).Str("key", key).Msg("Cache lookup failed")
		}
		return nil, false
	}

	var airports []domain.Airport
	if err := json.Unmarshal([]byte(val), &airports); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Discarding corrupt cache entry")
		return nil, false
	}

	s.log.Debug().Str("key", key).Int("results", len(airports)).Msg("Cache hit")
	return airports, true
}

func (s *Searcher) store(ctx context.Context, key string, airports []domain.Airport) {
	if airports == nil {
		airports = []domain.Airport{}
	}
	data, err := json.Marshal(airports)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Failed to encode cache entry")
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Failed to store cache entry")
	}
}

var _ domain.AirportSearcher = (*Searcher)(nil)
