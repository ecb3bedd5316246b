package weather

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/bihius/weather-app/internal/observability"
	"github.com/bihius/weather-app/internal/providers/openmeteo"
	"github.com/bihius/weather-app/internal/types"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock providers for testing

type mockForecastProvider struct {
	response *openmeteo.ForecastAPIResponse
	err      error
	calls    int
}

func (m *mockForecastProvider) GetForecast(_ context.Context, _, _ float64) (*openmeteo.ForecastAPIResponse, error) {
	m.calls++
	return m.response, m.err
}

type mockTimezoneService struct {
	loc *time.Location
	err error
}

func (m *mockTimezoneService) GetTimezone(_, _ float64) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.loc.String(), nil
}

func (m *mockTimezoneService) Location(_, _ float64) (*time.Location, error) {
	return m.loc, m.err
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

// 2025-06-01 is a Sunday.
var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func warsawFixture() *openmeteo.ForecastAPIResponse {
	return &openmeteo.ForecastAPIResponse{
		Latitude:  52.22,
		Longitude: 21.0,
		Timezone:  "Europe/Warsaw",
		Current: openmeteo.Current{
			Temperature2M:    fptr(18.4),
			WeatherCode:      iptr(3),
			WindSpeed10M:     fptr(12.2),
			WindDirection10M: fptr(250),
			Precipitation:    fptr(0.2),
			CloudCover:       fptr(76),
		},
		Daily: openmeteo.Daily{
			Time:             []string{"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05", "2025-06-06"},
			WeatherCode:      []*int{iptr(3), iptr(61), iptr(0), nil, iptr(95), iptr(71)},
			Temperature2MMax: []*float64{fptr(20.1), fptr(17.6), fptr(22.4), fptr(21.0), fptr(19.5), fptr(4.5)},
			Temperature2MMin: []*float64{fptr(11.0), fptr(9.4), fptr(10.2), nil, fptr(12.5), fptr(-1.5)},
		},
	}
}

func newTestService(provider ForecastProvider, tz *mockTimezoneService) (Service, *clockwork.FakeClock, *observability.Metrics) {
	clock := clockwork.NewFakeClockAt(testNow)
	metrics := observability.NewMetricsForTesting()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if tz == nil {
		tz = &mockTimezoneService{loc: time.UTC}
	}
	return NewWeatherServiceWithProvider(provider, tz, time.Minute, clock, metrics, logger), clock, metrics
}

func TestWeatherService_GetSnapshot(t *testing.T) {
	provider := &mockForecastProvider{response: warsawFixture()}
	svc, _, _ := newTestService(provider, nil)

	got, err := svc.GetSnapshot(context.Background(), 52.2297, 21.0122)
	require.NoError(t, err)

	assert.Equal(t, 18, got.TemperatureC)
	assert.Equal(t, types.IconPartlyCloudy, got.Icon)
	assert.Equal(t, types.NewWeather(3), got.Conditions)
	assert.Equal(t, types.Precipitation{Probability: 0, Type: types.PrecipitationNone, Amount: 0}, got.Precipitation)
	assert.Equal(t, types.Wind{SpeedKmh: 12, Direction: "W", Degree: 250}, got.Wind)
	assert.Equal(t, 76, got.CloudCoverPct)

	assert.Equal(t, []types.DailyForecast{
		{Day: "Tomorrow", TemperatureC: 14, Icon: types.IconModerateRain},
		{Day: "Tue", TemperatureC: 16, Icon: types.IconSunny},
		{Day: "Wed", TemperatureC: 11, Icon: types.IconPartlyCloudy},
		{Day: "Thu", TemperatureC: 17, Icon: types.IconThunderstorm},
		{Day: "Fri", TemperatureC: 2, Icon: types.IconLightSnow},
	}, got.Forecast)
}

func TestWeatherService_GetSnapshot_MissingCurrentFields(t *testing.T) {
	provider := &mockForecastProvider{response: &openmeteo.ForecastAPIResponse{}}
	svc, _, _ := newTestService(provider, nil)

	got, err := svc.GetSnapshot(context.Background(), 10, 10)
	require.NoError(t, err)

	assert.Equal(t, 0, got.TemperatureC)
	assert.Equal(t, types.IconPartlyCloudy, got.Icon)
	assert.Equal(t, types.PrecipitationNone, got.Precipitation.Type)
	assert.Equal(t, "N", got.Wind.Direction)
	assert.Empty(t, got.Forecast)
	assert.NotNil(t, got.Forecast)
}

func TestWeatherService_GetSnapshot_ClampsPercentages(t *testing.T) {
	resp := warsawFixture()
	resp.Current.Precipitation = fptr(150)
	resp.Current.CloudCover = fptr(-3)
	svc, _, _ := newTestService(&mockForecastProvider{response: resp}, nil)

	got, err := svc.GetSnapshot(context.Background(), 52.2297, 21.0122)
	require.NoError(t, err)
	assert.Equal(t, 100, got.Precipitation.Probability)
	assert.Equal(t, 0, got.CloudCoverPct)
}

func TestWeatherService_GetSnapshot_PrecipitationTypes(t *testing.T) {
	tests := []struct {
		code int
		want types.PrecipitationType
	}{
		{73, types.PrecipitationSnow},
		{86, types.PrecipitationSnow},
		{97, types.PrecipitationHail},
		{63, types.PrecipitationRain},
		{81, types.PrecipitationRain},
		{2, types.PrecipitationNone},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			resp := warsawFixture()
			resp.Current.WeatherCode = iptr(tt.code)
			svc, _, _ := newTestService(&mockForecastProvider{response: resp}, nil)

			got, err := svc.GetSnapshot(context.Background(), 52.2297, 21.0122)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Precipitation.Type)
		})
	}
}

func TestWeatherService_DayLabelsWithoutDates(t *testing.T) {
	resp := warsawFixture()
	resp.Daily.Time = nil

	tests := []struct {
		name string
		loc  *time.Location
		want []string
	}{
		// Noon UTC on Sunday.
		{"utc", time.UTC, []string{"Tomorrow", "Tue", "Wed", "Thu", "Fri"}},
		// Already Monday 02:00 at UTC+14.
		{"line islands", time.FixedZone("UTC+14", 14*3600), []string{"Tomorrow", "Wed", "Thu", "Fri", "Sat"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService(&mockForecastProvider{response: resp}, &mockTimezoneService{loc: tt.loc})

			got, err := svc.GetSnapshot(context.Background(), 1.87, -157.4)
			require.NoError(t, err)

			var days []string
			for _, d := range got.Forecast {
				days = append(days, d.Day)
			}
			assert.Equal(t, tt.want, days)
			assert.Equal(t, tt.loc.String(), got.Timezone)
		})
	}
}

func TestWeatherService_TimezoneFallback(t *testing.T) {
	tests := []struct {
		name     string
		reported string
		want     string
	}{
		{"provider timezone", "Asia/Tokyo", "Asia/Tokyo"},
		{"unknown provider timezone", "Not/AZone", "UTC"},
		{"no provider timezone", "", "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := warsawFixture()
			resp.Timezone = tt.reported
			tz := &mockTimezoneService{err: errors.New("ocean")}
			svc, _, _ := newTestService(&mockForecastProvider{response: resp}, tz)

			got, err := svc.GetSnapshot(context.Background(), 35.6762, 139.6503)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Timezone)
		})
	}
}

func TestWeatherService_GetSnapshot_InvalidCoordinates(t *testing.T) {
	provider := &mockForecastProvider{response: warsawFixture()}
	svc, _, _ := newTestService(provider, nil)

	_, err := svc.GetSnapshot(context.Background(), 91, 0)
	assert.ErrorIs(t, err, types.ErrInvalidLatitude)

	_, err = svc.GetSnapshot(context.Background(), 0, -181)
	assert.ErrorIs(t, err, types.ErrInvalidLongitude)

	assert.Equal(t, 0, provider.calls)
}

func TestWeatherService_GetSnapshot_ProviderError(t *testing.T) {
	providerErr := errors.New("upstream down")
	svc, _, metrics := newTestService(&mockForecastProvider{err: providerErr}, nil)

	_, err := svc.GetSnapshot(context.Background(), 52.2297, 21.0122)
	assert.ErrorIs(t, err, providerErr)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ForecastRequests.WithLabelValues("error")))
}

func TestWeatherService_Caching(t *testing.T) {
	provider := &mockForecastProvider{response: warsawFixture()}
	svc, clock, metrics := newTestService(provider, nil)
	ctx := context.Background()

	first, err := svc.GetSnapshot(ctx, 52.2297, 21.0122)
	require.NoError(t, err)

	// Same 0.01° grid cell.
	second, err := svc.GetSnapshot(ctx, 52.2301, 21.0098)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ForecastRequests.WithLabelValues("cached")))

	clock.Advance(time.Minute + time.Second)
	_, err = svc.GetSnapshot(ctx, 52.2297, 21.0122)
	require.NoError(t, err)
	assert.Equal(t, 2, provider.calls)
}

func TestWeatherService_GetCurrent(t *testing.T) {
	svc, _, _ := newTestService(&mockForecastProvider{response: warsawFixture()}, nil)

	got, err := svc.GetCurrent(context.Background(), 52.2297, 21.0122)
	require.NoError(t, err)
	assert.Equal(t, &types.CurrentWeather{TemperatureC: 18, Icon: types.IconPartlyCloudy}, got)
}

func TestGridKey(t *testing.T) {
	assert.Equal(t, "52.23,21.01", gridKey(52.2297, 21.0122))
	assert.Equal(t, "-33.87,151.21", gridKey(-33.8688, 151.2093))
	assert.Equal(t, gridKey(52.2297, 21.0122), gridKey(52.2301, 21.0098))
}
