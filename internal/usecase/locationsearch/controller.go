// Package locationsearch implements the per-session airport search pipeline:
// two text inputs, an active field, debounced searches, and one cancelable
// in-flight request.
package locationsearch

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/flight-alert/flight-alert-service/internal/domain"
	"github.com/flight-alert/flight-alert-service/internal/infrastructure/logger"
	"github.com/flight-alert/flight-alert-service/internal/infrastructure/timeutil"
)

// Default pipeline values.
const (
	DefaultDebounce = 300 * time.Millisecond
	DefaultLimit    = domain.DefaultSearchLimit
)

// ErrClosed is returned by operations on a closed controller.
var ErrClosed = errors.New("search session closed")

// Config contains the tunables of a Controller.
type Config struct {
	// Debounce is the quiet window before a text edit triggers a search
	Debounce time.Duration

	// Limit is the page size requested from the searcher
	Limit int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Debounce: DefaultDebounce,
		Limit:    DefaultLimit,
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the clock used for debounce timers.
func WithClock(clock timeutil.Clock) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

// WithLogger sets the logger.
func WithLogger(log *logger.Logger) Option {
	return func(c *Controller) {
		c.log = logger.OrNop(log).WithComponent("locationsearch")
	}
}

// WithOnSettled registers fn to receive a snapshot each time a search
// request settles. Superseded requests never settle.
func WithOnSettled(fn func(State)) Option {
	return func(c *Controller) {
		c.onSettled = fn
	}
}

// State is a snapshot of a search session.
type State struct {
	OriginText          string
	DestinationText     string
	ActiveField         domain.SearchField
	IsLoading           bool
	ErrorMessage        string
	Results             []domain.Airport
	SelectedOrigin      *domain.Airport
	SelectedDestination *domain.Airport
	CanCreateAlert      bool
}

type fieldState struct {
	text        string
	lastEmitted string
	timer       timeutil.Timer
	token       uint64
}

// Controller turns text edits into rate-limited, cancelable, field-scoped searches.
// All methods are safe for concurrent use.
type Controller struct {
	searcher  domain.AirportSearcher
	clock     timeutil.Clock
	log       *logger.Logger
	debounce  time.Duration
	limit     int
	onSettled func(State)

	mu                  sync.Mutex
	fields              map[domain.SearchField]*fieldState
	active              domain.SearchField
	sink                resultSink
	selectedOrigin      *domain.Airport
	selectedDestination *domain.Airport
	cancel              context.CancelFunc
	generation          uint64
	nextToken           uint64
	closed              bool
	wg                  sync.WaitGroup
}

// NewController creates a Controller with the origin field active.
// If config is nil, default values are used.
func NewController(searcher domain.AirportSearcher, config *Config, opts ...Option) *Controller {
	cfg := DefaultConfig()
	if config != nil {
		if config.Debounce > 0 {
			cfg.Debounce = config.Debounce
		}
		if config.Limit > 0 {
			cfg.Limit = config.Limit
		}
	}

	c := &Controller{
		searcher: searcher,
		clock:    timeutil.NewRealClock(),
		log:      logger.Nop(),
		debounce: cfg.Debounce,
		limit:    cfg.Limit,
		fields: map[domain.SearchField]*fieldState{
			domain.FieldOrigin:      {},
			domain.FieldDestination: {},
		},
		active: domain.FieldOrigin,
		sink:   resultSink{results: []domain.Airport{}},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnTextChanged records text for field and schedules a debounced search.
// The search fires only if the text differs from the last value emitted
// for the field and the field is active when the window elapses.
func (c *Controller) OnTextChanged(field domain.SearchField, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	fs, err := c.fieldLocked(field)
	if err != nil {
		return err
	}

	fs.text = text
	c.stopTimerLocked(fs)

	c.nextToken++
	token := c.nextToken
	fs.token = token
	fs.timer = c.clock.AfterFunc(c.debounce, func() {
		c.fireDebounced(field, token)
	})
	return nil
}

// SetActiveField switches the active field. Existing text for the field is
// searched immediately; empty text clears the results.
func (c *Controller) SetActiveField(field domain.SearchField) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	fs, err := c.fieldLocked(field)
	if err != nil {
		return err
	}

	c.active = field
	c.stopTimerLocked(fs)
	fs.lastEmitted = fs.text
	c.searchLocked(fs.text)
	return nil
}

// ClearField empties the text and selection of field and clears the results.
func (c *Controller) ClearField(field domain.SearchField) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	fs, err := c.fieldLocked(field)
	if err != nil {
		return err
	}

	fs.text = ""
	fs.lastEmitted = ""
	c.stopTimerLocked(fs)
	c.setSelectionLocked(field, nil)

	if field == c.active {
		c.cancelInflightLocked()
		c.sink.reset()
		return nil
	}
	c.sink.clearResults()
	return nil
}

// SelectAirport assigns airport to the active field, echoes its display
// name into the field text, and ends the search for that field.
func (c *Controller) SelectAirport(airport domain.Airport) error {
	if strings.TrimSpace(airport.IATACode) == "" {
		return domain.NewValidationError("iataCode", "is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	fs, err := c.fieldLocked(c.active)
	if err != nil {
		return err
	}

	selected := airport
	c.setSelectionLocked(c.active, &selected)

	text := airport.DisplayName()
	fs.text = text
	fs.lastEmitted = text
	c.stopTimerLocked(fs)

	c.cancelInflightLocked()
	c.sink.reset()

	c.log.Debug().
		Str("field", c.active.String()).
		Str("iata_code", airport.IATACode).
		Msg("Airport selected")
	return nil
}

// CanCreateAlert reports whether both origin and destination are selected.
func (c *Controller) CanCreateAlert() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canCreateAlertLocked()
}

// Selection returns the selected origin and destination, or
// domain.ErrIncompleteSelection if either is missing.
func (c *Controller) Selection() (domain.Airport, domain.Airport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.canCreateAlertLocked() {
		return domain.Airport{}, domain.Airport{}, domain.ErrIncompleteSelection
	}
	return *c.selectedOrigin, *c.selectedDestination, nil
}

// Search records query as the active field's text and searches it
// immediately, superseding any in-flight request and pending debounce.
func (c *Controller) Search(query string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	fs, err := c.fieldLocked(c.active)
	if err != nil {
		return err
	}

	fs.text = query
	fs.lastEmitted = query
	c.stopTimerLocked(fs)
	c.searchLocked(query)
	return nil
}

// Refresh searches the active field's current text again.
func (c *Controller) Refresh() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	fs, err := c.fieldLocked(c.active)
	if err != nil {
		return err
	}
	c.searchLocked(fs.text)
	return nil
}

// State returns a snapshot of the session.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Close stops pending timers, cancels the in-flight request, and waits for
// it to return. Close is idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	for _, fs := range c.fields {
		c.stopTimerLocked(fs)
	}
	c.cancelInflightLocked()
	c.sink.reset()
	c.mu.Unlock()

	c.wg.Wait()
}

func (c *Controller) fieldLocked(field domain.SearchField) (*fieldState, error) {
	if c.closed {
		return nil, ErrClosed
	}
	fs, ok := c.fields[field]
	if !ok {
		return nil, domain.WrapInvalidRequest("unknown search field %d", int(field))
	}
	return fs, nil
}

func (c *Controller) stopTimerLocked(fs *fieldState) {
	if fs.timer != nil {
		fs.timer.Stop()
		fs.timer = nil
	}
	// Invalidate a callback that already started before Stop.
	fs.token = 0
}

func (c *Controller) setSelectionLocked(field domain.SearchField, airport *domain.Airport) {
	if field == domain.FieldOrigin {
		c.selectedOrigin = airport
	} else {
		c.selectedDestination = airport
	}
}

func (c *Controller) canCreateAlertLocked() bool {
	return c.selectedOrigin != nil && c.selectedDestination != nil
}

func (c *Controller) fireDebounced(field domain.SearchField, token uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fs, ok := c.fields[field]
	if c.closed || !ok || fs.token != token {
		return
	}
	fs.timer = nil
	fs.token = 0

	if fs.text == fs.lastEmitted {
		return
	}
	fs.lastEmitted = fs.text

	if field != c.active {
		return
	}
	c.searchLocked(fs.text)
}

// cancelInflightLocked cancels the outstanding request, if any, and makes
// its completion stale.
func (c *Controller) cancelInflightLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.generation++
}

func (c *Controller) searchLocked(query string) {
	c.cancelInflightLocked()

	query = strings.TrimSpace(query)
	if query == "" {
		c.sink.reset()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	generation := c.generation
	c.sink.begin()

	params := domain.SearchParams{
		Query: query,
		Limit: c.limit,
		Page:  domain.DefaultSearchPage,
	}

	c.log.Debug().
		Str("field", c.active.String()).
		Str("query", query).
		Uint64("generation", generation).
		Msg("Starting airport search")

	c.wg.Add(1)
	go c.run(ctx, generation, params)
}

func (c *Controller) run(ctx context.Context, generation uint64, params domain.SearchParams) {
	defer c.wg.Done()

	start := c.clock.Now()
	airports, err := c.searcher.Search(ctx, params)

	c.mu.Lock()
	if c.closed || generation != c.generation {
		c.mu.Unlock()
		c.log.Debug().
			Str("query", params.Query).
			Uint64("generation", generation).
			Msg("Dropping superseded search result")
		return
	}

	c.cancel()
	c.cancel = nil

	if err != nil {
		c.sink.fail(err)
		c.log.Warn().
			Err(err).
			Str("query", params.Query).
			Str("message", c.sink.errorMessage).
			Msg("Airport search failed")
	} else {
		c.sink.succeed(airports)
		c.log.Debug().
			Str("query", params.Query).
			Int("results", len(c.sink.results)).
			Dur("duration", c.clock.Now().Sub(start)).
			Msg("Airport search completed")
	}

	snapshot := c.stateLocked()
	onSettled := c.onSettled
	c.mu.Unlock()

	if onSettled != nil {
		onSettled(snapshot)
	}
}

func (c *Controller) stateLocked() State {
	results := make([]domain.Airport, len(c.sink.results))
	copy(results, c.sink.results)

	return State{
		OriginText:          c.fields[domain.FieldOrigin].text,
		DestinationText:     c.fields[domain.FieldDestination].text,
		ActiveField:         c.active,
		IsLoading:           c.sink.loading,
		ErrorMessage:        c.sink.errorMessage,
		Results:             results,
		SelectedOrigin:      copyAirport(c.selectedOrigin),
		SelectedDestination: copyAirport(c.selectedDestination),
		CanCreateAlert:      c.canCreateAlertLocked(),
	}
}

func copyAirport(a *domain.Airport) *domain.Airport {
	if a == nil {
		return nil
	}
	cp := *a
	return &cp
}
