// Package alert manages price-drop alerts created from finished search sessions.
package alert

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/flight-alert/flight-alert-service/internal/domain"
	"github.com/flight-alert/flight-alert-service/internal/infrastructure/logger"
	"github.com/flight-alert/flight-alert-service/internal/infrastructure/timeutil"
)

// DefaultCurrency is the currency of newly created alerts.
const DefaultCurrency = "USD"

// Option configures a Service.
type Option func(*Service)

// WithClock sets the clock used for creation timestamps.
func WithClock(clock timeutil.Clock) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// WithLogger sets the logger.
func WithLogger(log *logger.Logger) Option {
	return func(s *Service) {
		s.log = logger.OrNop(log).WithComponent("alert")
	}
}

// WithIDGenerator overrides how alert ids are generated.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		s.newID = fn
	}
}

// WithSampleAlerts seeds the service with the given alerts.
func WithSampleAlerts(alerts ...domain.PriceAlert) Option {
	return func(s *Service) {
		s.samples = alerts
		s.seeded = true
	}
}

// Service is an in-memory store of price alerts. It is safe for concurrent use.
type Service struct {
	clock   timeutil.Clock
	log     *logger.Logger
	newID   func() string
	samples []domain.PriceAlert
	seeded  bool

	mu     sync.RWMutex
	alerts map[string]domain.PriceAlert
}

// NewService creates a Service. Unless WithSampleAlerts is given, it is
// seeded with SampleAlerts.
func NewService(opts ...Option) *Service {
	s := &Service{
		clock:  timeutil.NewRealClock(),
		log:    logger.Nop(),
		newID:  uuid.NewString,
		alerts: make(map[string]domain.PriceAlert),
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.seeded {
		s.samples = SampleAlerts(s.clock)
	}

	for _, a := range s.samples {
		if a.ID == "" {
			a.ID = s.newID()
		}
		s.alerts[a.ID] = a
	}
	s.samples = nil
	return s
}

// SampleAlerts returns the alert shown on a fresh install: New York to Kochi,
// down from $110 to $55.
func SampleAlerts(clock timeutil.Clock) []domain.PriceAlert {
	return []domain.PriceAlert{
		{
			Origin:        domain.Airport{IATACode: "JFK", Name: "John F. Kennedy International Airport", CityName: "New York", CountryName: "United States"},
			Destination:   domain.Airport{IATACode: "COK", Name: "Cochin International Airport", CityName: "Kochi", CountryName: "India"},
			DepartureDate: "2025-06-13",
			OriginalPrice: 110,
			CurrentPrice:  55,
			Currency:      DefaultCurrency,
			CreatedAt:     clock.Now(),
		},
	}
}

// List returns the alerts whose fare dropped by at least minDropPercent,
// newest first. Alerts with no observed fare are always included so a new
// alert shows up as soon as it is created.
func (s *Service) List(ctx context.Context, minDropPercent float64) ([]domain.PriceAlert, error) {
	if minDropPercent < 0 || minDropPercent > 100 {
		return nil, domain.NewValidationError("minDropPercent", "must be between 0 and 100")
	}

	s.mu.RLock()
	result := make([]domain.PriceAlert, 0, len(s.alerts))
	for _, a := range s.alerts {
		if !a.Priced() || a.DropPercent() >= minDropPercent {
			result = append(result, a)
		}
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// Create adds an alert for the route. No fare has been observed yet, so the
// original and current prices start equal.
func (s *Service) Create(ctx context.Context, origin, destination domain.Airport) (domain.PriceAlert, error) {
	a := domain.PriceAlert{
		ID:          s.newID(),
		Origin:      origin,
		Destination: destination,
		Currency:    DefaultCurrency,
		CreatedAt:   s.clock.Now(),
	}
	if err := a.Validate(); err != nil {
		return domain.PriceAlert{}, err
	}

	s.mu.Lock()
	s.alerts[a.ID] = a
	s.mu.Unlock()

	s.log.Info().
		Str("alert_id", a.ID).
		Str("origin", a.Origin.IATACode).
		Str("destination", a.Destination.IATACode).
		Msg("Price alert created")
	return a, nil
}

// Get returns the alert with the given id.
func (s *Service) Get(ctx context.Context, id string) (domain.PriceAlert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.alerts[strings.TrimSpace(id)]
	if !ok {
		return domain.PriceAlert{}, domain.ErrAlertNotFound
	}
	return a, nil
}

// Delete removes the alert with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)

	s.mu.Lock()
	_, ok := s.alerts[id]
	delete(s.alerts, id)
	s.mu.Unlock()

	if !ok {
		return domain.ErrAlertNotFound
	}
	s.log.Info().Str("alert_id", id).Msg("Price alert deleted")
	return nil
}
