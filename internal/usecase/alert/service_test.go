package alert

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-alert/flight-alert-service/internal/domain"
	"github.com/flight-alert/flight-alert-service/internal/infrastructure/timeutil"
)

var (
	jfk = domain.Airport{IATACode: "JFK", CityName: "New York", CountryName: "United States"}
	lhr = domain.Airport{IATACode: "LHR", CityName: "London", CountryName: "United Kingdom"}
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("alert-%d", n)
	}
}

func TestNewService_SeedsSample(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))
	svc := NewService(WithClock(clock))

	alerts, err := svc.List(context.Background(), domain.DefaultMinDropPercent)
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	sample := alerts[0]
	assert.NotEmpty(t, sample.ID)
	assert.Equal(t, "JFK", sample.Origin.IATACode)
	assert.Equal(t, "COK", sample.Destination.IATACode)
	assert.Equal(t, "2025-06-13", sample.DepartureDate)
	assert.Equal(t, 55.0, sample.DropAmount())
	assert.Equal(t, 50.0, sample.DropPercent())
	assert.Equal(t, clock.Now(), sample.CreatedAt)
}

func TestService_List(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	seed := []domain.PriceAlert{
		{ID: "small", Origin: jfk, Destination: lhr, OriginalPrice: 100, CurrentPrice: 90, CreatedAt: base},
		{ID: "old", Origin: jfk, Destination: lhr, OriginalPrice: 100, CurrentPrice: 50, CreatedAt: base},
		{ID: "new", Origin: lhr, Destination: jfk, OriginalPrice: 200, CurrentPrice: 140, CreatedAt: base.Add(time.Hour)},
		{ID: "flat", Origin: lhr, Destination: jfk, OriginalPrice: 200, CurrentPrice: 200, CreatedAt: base.Add(2 * time.Hour)},
	}
	svc := NewService(WithSampleAlerts(seed...))

	tests := []struct {
		name    string
		min     float64
		wantIDs []string
	}{
		{name: "default threshold", min: domain.DefaultMinDropPercent, wantIDs: []string{"new", "old"}},
		{name: "zero includes everything", min: 0, wantIDs: []string{"flat", "new", "old", "small"}},
		{name: "high threshold", min: 50, wantIDs: []string{"old"}},
		{name: "nothing matches", min: 100, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts, err := svc.List(context.Background(), tt.min)
			require.NoError(t, err)

			ids := make([]string, 0, len(alerts))
			for _, a := range alerts {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestService_ListRejectsBadThreshold(t *testing.T) {
	svc := NewService()

	for _, min := range []float64{-1, 100.5} {
		_, err := svc.List(context.Background(), min)
		assert.True(t, domain.IsInvalidRequest(err), "min=%v", min)
	}
}

func TestService_Create(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2025, 6, 13, 10, 0, 0, 0, time.UTC))
	svc := NewService(
		WithClock(clock),
		WithIDGenerator(sequentialIDs()),
		WithSampleAlerts(),
	)

	created, err := svc.Create(context.Background(), jfk, lhr)
	require.NoError(t, err)

	assert.Equal(t, "alert-1", created.ID)
	assert.Equal(t, "JFK", created.Origin.IATACode)
	assert.Equal(t, "LHR", created.Destination.IATACode)
	assert.Equal(t, DefaultCurrency, created.Currency)
	assert.Equal(t, clock.Now(), created.CreatedAt)
	assert.Zero(t, created.DropAmount())

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	assert.False(t, created.Priced())

	// Unpriced alerts are listed whatever the threshold.
	for _, min := range []float64{0, domain.DefaultMinDropPercent, 100} {
		alerts, err := svc.List(context.Background(), min)
		require.NoError(t, err)
		require.Len(t, alerts, 1, "min=%v", min)
		assert.Equal(t, created.ID, alerts[0].ID)
	}
}

func TestService_CreateSameAirportTwice(t *testing.T) {
	svc := NewService(WithSampleAlerts())

	_, err := svc.Create(context.Background(), jfk, jfk)

	assert.NoError(t, err)
}

func TestService_CreateValidation(t *testing.T) {
	svc := NewService(WithSampleAlerts())

	tests := []struct {
		name        string
		origin      domain.Airport
		destination domain.Airport
		wantField   string
	}{
		{name: "missing origin", destination: lhr, wantField: "origin"},
		{name: "missing destination", origin: jfk, wantField: "destination"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.origin, tt.destination)

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestService_GetAndDelete(t *testing.T) {
	svc := NewService(WithIDGenerator(sequentialIDs()), WithSampleAlerts())
	ctx := context.Background()

	created, err := svc.Create(ctx, jfk, lhr)
	require.NoError(t, err)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrAlertNotFound)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrAlertNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), domain.ErrAlertNotFound)
}
