//go:build !integration

package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"tripLogger/business/trip"
	"tripLogger/domain"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type fakeTripService struct {
	trips   []domain.Trip
	created trip.CreateTripInput
	err     error
}

func (f *fakeTripService) CreateTrip(ctx context.Context, userID uint, in trip.CreateTripInput) (domain.Trip, error) {
	if f.err != nil {
		return domain.Trip{}, f.err
	}
	f.created = in
	return domain.Trip{ID: 42, UserID: userID}, nil
}

func (f *fakeTripService) GetTrips(ctx context.Context, userID uint) ([]domain.Trip, error) {
	return f.trips, f.err
}

func (f *fakeTripService) GetTripByID(ctx context.Context, userID, id uint) (domain.Trip, error) {
	for _, t := range f.trips {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Trip{}, domain.ErrTripNotFound
}

func (f *fakeTripService) GetStats(ctx context.Context, userID uint) (domain.TripStats, error) {
	return domain.TripStats{
		TripsByMonth:         map[string]int{"2024-05": 2},
		FavoriteDestinations: []domain.DestinationFrequency{{Destination: "Paris", Count: 2}},
	}, f.err
}

func (f *fakeTripService) GetSpending(ctx context.Context, userID uint) (domain.TripSpending, error) {
	return domain.TripSpending{Total: 300, Average: 150}, f.err
}

func TestCreateTripHandler(t *testing.T) {
	svc := &fakeTripService{}
	h := NewTripHandler(svc, time.Second)

	body := `{"destination":"Paris","start_date":"2024-05-01","end_date":"2024-05-04","budget":1200,"rating":0}`
	c, rec := newAuthedContext(echo.New(), http.MethodPost, "/trips", body, 3)
	require.NoError(t, h.CreateTrip(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"id":42}`, rec.Body.String())
	require.Equal(t, "Paris", svc.created.Destination)
	require.Equal(t, 1200.0, svc.created.Budget)
	require.Zero(t, svc.created.Rating)
}

func TestCreateTripHandlerBadRequest(t *testing.T) {
	testCases := []struct {
		name string
		body string
		err  error
	}{
		{name: "MissingRating", body: `{"destination":"Paris","start_date":"2024-05-01","end_date":"2024-05-04","budget":1200}`},
		{name: "MissingDestination", body: `{"start_date":"2024-05-01","end_date":"2024-05-04","budget":1200,"rating":3}`},
		{name: "MalformedJSON", body: `{"destination":`},
		{
			name: "ServiceValidation",
			body: `{"destination":"Paris","start_date":"2024-05-04","end_date":"2024-05-01","budget":1200,"rating":3}`,
			err:  errors.Join(trip.ErrInvalidTrip, errors.New("end date cannot be before start date")),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewTripHandler(&fakeTripService{err: tc.err}, time.Second)

			c, rec := newAuthedContext(echo.New(), http.MethodPost, "/trips", tc.body, 3)
			require.NoError(t, h.CreateTrip(c))
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetTripByIDHandler(t *testing.T) {
	svc := &fakeTripService{trips: []domain.Trip{{
		ID:          5,
		Destination: "Kyoto",
		StartDate:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 4, 9, 0, 0, 0, 0, time.UTC),
		Budget:      2200,
		Rating:      4.5,
	}}}
	h := NewTripHandler(svc, time.Second)
	e := echo.New()

	c, rec := newAuthedContext(e, http.MethodGet, "/trips/5", "", 1)
	c.SetParamNames("id")
	c.SetParamValues("5")
	require.NoError(t, h.GetTripByID(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"start_date":"2024-04-01"`)
	require.Contains(t, rec.Body.String(), "Kyoto")

	c, rec = newAuthedContext(e, http.MethodGet, "/trips/6", "", 1)
	c.SetParamNames("id")
	c.SetParamValues("6")
	require.NoError(t, h.GetTripByID(c))
	require.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = newAuthedContext(e, http.MethodGet, "/trips/abc", "", 1)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, h.GetTripByID(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatsAndSpendingHandlers(t *testing.T) {
	h := NewTripHandler(&fakeTripService{}, time.Second)
	e := echo.New()

	c, rec := newAuthedContext(e, http.MethodGet, "/trips/stats", "", 1)
	require.NoError(t, h.GetStats(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"trips_by_month":{"2024-05":2},"favorite_destinations":[{"destination":"Paris","count":2}]}`, rec.Body.String())

	c, rec = newAuthedContext(e, http.MethodGet, "/trips/spending", "", 1)
	require.NoError(t, h.GetSpending(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var spending domain.TripSpending
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spending))
	require.Equal(t, 300.0, spending.Total)
	require.Equal(t, 150.0, spending.Average)
}

func TestTripHandlersRequireUser(t *testing.T) {
	h := NewTripHandler(&fakeTripService{}, time.Second)

	c, rec := newAuthedContext(echo.New(), http.MethodGet, "/trips", "", 0)
	require.NoError(t, h.GetTrips(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetTripsHandlerEnvelope(t *testing.T) {
	svc := &fakeTripService{trips: []domain.Trip{{
		ID:          1,
		Destination: "Lisbon",
		StartDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		Budget:      900,
		Rating:      4,
	}}}
	h := NewTripHandler(svc, time.Second)

	c, rec := newAuthedContext(echo.New(), http.MethodGet, "/trips", "", 1)
	require.NoError(t, h.GetTrips(c))
	require.Equal(t, http.StatusOK, rec.Code)

	// enveloped: an object wrapping the list, not a bare array
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope)
	require.Contains(t, rec.Body.String(), `"destination":"Lisbon"`)
	require.Contains(t, rec.Body.String(), `"start_date":"2024-06-01"`)
}
