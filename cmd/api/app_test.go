package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bihius/weather-app/internal/bootstrap"
	"github.com/bihius/weather-app/internal/events"
	"github.com/bihius/weather-app/internal/favorites"
	"github.com/bihius/weather-app/internal/icons"
	"github.com/bihius/weather-app/internal/observability"
	"github.com/bihius/weather-app/internal/providers"
	"github.com/bihius/weather-app/internal/settings"
	"github.com/bihius/weather-app/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLocation struct {
	places    []types.Place
	err       error
	lastQuery string
	lastLimit int
}

func (s *stubLocation) Resolve(_ context.Context, query string, limit int) ([]types.Place, error) {
	s.lastQuery = query
	s.lastLimit = limit
	return s.places, s.err
}

type stubWeather struct {
	snapshot *types.WeatherSnapshot
	err      error
	calls    int
}

func (s *stubWeather) GetSnapshot(_ context.Context, _, _ float64) (*types.WeatherSnapshot, error) {
	s.calls++
	return s.snapshot, s.err
}

func (s *stubWeather) GetCurrent(_ context.Context, _, _ float64) (*types.CurrentWeather, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &types.CurrentWeather{TemperatureC: s.snapshot.TemperatureC, Icon: s.snapshot.Icon}, nil
}

type testEnv struct {
	app      *App
	location *stubLocation
	weather  *stubWeather
	settings settings.Service
}

func newTestEnv(t *testing.T, favoriteIDs ...string) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewMetricsForTesting()
	env := &testEnv{
		location: &stubLocation{},
		weather: &stubWeather{snapshot: &types.WeatherSnapshot{
			TemperatureC: 18,
			Icon:         types.IconPartlyCloudy,
			Forecast: []types.DailyForecast{
				{Day: "Tomorrow", TemperatureC: 20, Icon: types.IconSunny},
			},
		}},
		settings: settings.NewService(settings.NewMemoryStore(), logger),
	}

	env.app = newApp(&bootstrap.Services{
		Location:  env.location,
		Weather:   env.weather,
		Favorites: favorites.NewService(favorites.NewMemoryStore(favoriteIDs...), events.NopPublisher{}, metrics, logger),
		Settings:  env.settings,
		Icons:     icons.NewResolver("", "", metrics, logger),
	}, logger)
	return env
}

func (e *testEnv) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.app.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestPing(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/ping", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", decode[map[string]string](t, rec)["message"])
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	env.app.router.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestSearchPlaces(t *testing.T) {
	env := newTestEnv(t)
	env.location.places = []types.Place{
		{Name: "Kraków", Country: "Poland", State: "Lesser Poland Voivodeship", Lat: 50.0647, Lon: 19.945, DisplayName: "Kraków"},
	}

	t.Run("default limit", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/places?q=Krakow", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Krakow", env.location.lastQuery)
		assert.Equal(t, 10, env.location.lastLimit)

		places := decode[struct {
			Places []types.Place `json:"places"`
		}](t, rec)
		require.Len(t, places.Places, 1)
		assert.Equal(t, "Kraków", places.Places[0].Name)
	})

	t.Run("limit out of range", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/places?q=Krakow&limit=500", "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("upstream failure", func(t *testing.T) {
		env.location.err = providers.LookupError("nominatim", errors.New("connection refused"))
		defer func() { env.location.err = nil }()

		rec := env.do(t, http.MethodGet, "/places?q=Krakow", "")
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

type weatherBody struct {
	Temperature TemperatureView `json:"temperature"`
	IconPath    string          `json:"iconPath"`
	Forecast    []DailyView     `json:"forecast"`
}

func TestGetWeather(t *testing.T) {
	tests := []struct {
		name         string
		savedUnit    string
		query        string
		wantStatus   int
		wantDisplay  string
		wantIconPath string
		wantDay      string
	}{
		{
			name:         "saved celsius",
			query:        "latitude=52.23&longitude=21.01",
			wantStatus:   http.StatusOK,
			wantDisplay:  "18°C",
			wantIconPath: "/WeatherIconsLight/Partly_Cloudy.svg",
			wantDay:      "20°C",
		},
		{
			name:         "saved fahrenheit",
			savedUnit:    "fahrenheit",
			query:        "latitude=52.23&longitude=21.01",
			wantStatus:   http.StatusOK,
			wantDisplay:  "64°F",
			wantIconPath: "/WeatherIconsLight/Partly_Cloudy.svg",
			wantDay:      "68°F",
		},
		{
			name:         "query overrides saved unit and theme",
			savedUnit:    "fahrenheit",
			query:        "latitude=52.23&longitude=21.01&unit=kelvin&theme=dark",
			wantStatus:   http.StatusOK,
			wantDisplay:  "291K",
			wantIconPath: "/WeatherIconsDark/Partly_Cloudy.svg",
			wantDay:      "293K",
		},
		{
			name:       "invalid unit",
			query:      "latitude=52.23&longitude=21.01&unit=rankine",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "latitude out of range",
			query:      "latitude=91&longitude=21.01",
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "missing longitude",
			query:      "latitude=52.23",
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.savedUnit != "" {
				_, err := env.settings.SetUnit(context.Background(), tt.savedUnit)
				require.NoError(t, err)
			}

			rec := env.do(t, http.MethodGet, "/weather?"+tt.query, "")

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}
			body := decode[weatherBody](t, rec)
			assert.Equal(t, tt.wantDisplay, body.Temperature.Display)
			assert.Equal(t, tt.wantIconPath, body.IconPath)
			require.Len(t, body.Forecast, 1)
			assert.Equal(t, "Tomorrow", body.Forecast[0].Day)
			assert.Equal(t, tt.wantDay, body.Forecast[0].Temperature.Display)
		})
	}
}

func TestGetWeather_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"status error", &providers.StatusError{Provider: "open-meteo", StatusCode: 503, Body: "down"}, http.StatusBadGateway},
		{"transport error", providers.LookupError("open-meteo", errors.New("timeout")), http.StatusBadGateway},
		{"invalid coordinates", types.ErrInvalidLatitude, http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.weather.err = tt.err

			rec := env.do(t, http.MethodGet, "/weather?latitude=1&longitude=2", "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestIconPath(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/icons/path?token=lcloud-lsunny&theme=dark", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[struct {
		Category string `json:"category"`
		Path     string `json:"path"`
	}](t, rec)
	assert.Equal(t, "Partly_Cloudy", body.Category)
	assert.Equal(t, "/WeatherIconsDark/Partly_Cloudy.svg", body.Path)

	rec = env.do(t, http.MethodGet, "/icons/path?token=no-such-icon", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/WeatherIconsLight/")
}

type favoritesBody struct {
	Favorites []FavoriteView `json:"favorites"`
}

type toggleBody struct {
	Added bool     `json:"added"`
	IDs   []string `json:"ids"`
}

func TestToggleFavorite(t *testing.T) {
	env := newTestEnv(t)
	payload := `{"city":"Paris","lat":48.8566,"lon":2.3522}`

	rec := env.do(t, http.MethodPost, "/favorites/toggle", payload)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	first := decode[toggleBody](t, rec)
	assert.True(t, first.Added)
	assert.Equal(t, []string{"Paris|48.8566|2.3522"}, first.IDs)

	rec = env.do(t, http.MethodPost, "/favorites/toggle", payload)
	require.Equal(t, http.StatusOK, rec.Code)
	second := decode[toggleBody](t, rec)
	assert.False(t, second.Added)
	assert.Empty(t, second.IDs)
}

func TestToggleFavorite_Validation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/favorites/toggle", `{"city":"Paris","lat":48.8566}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/favorites/toggle", `{"city":""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListFavorites(t *testing.T) {
	env := newTestEnv(t, "Oslo|59.9139|10.7522", "Atlantis")

	rec := env.do(t, http.MethodGet, "/favorites", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[favoritesBody](t, rec)
	require.Len(t, body.Favorites, 2)
	assert.Equal(t, "Oslo", body.Favorites[0].City)
	assert.Nil(t, body.Favorites[0].Current)
	assert.Equal(t, "Atlantis", body.Favorites[1].City)
	assert.Nil(t, body.Favorites[1].Lat)
	assert.Equal(t, 0, env.weather.calls)

	rec = env.do(t, http.MethodGet, "/favorites?includeWeather=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode[favoritesBody](t, rec)
	require.NotNil(t, body.Favorites[0].Current)
	assert.Equal(t, 18, body.Favorites[0].Current.TemperatureC)
	assert.Nil(t, body.Favorites[1].Current)
	assert.Equal(t, 1, env.weather.calls)
}

func TestListFavorites_WeatherFailureKeepsList(t *testing.T) {
	env := newTestEnv(t, "Oslo|59.9139|10.7522")
	env.weather.err = providers.LookupError("open-meteo", errors.New("timeout"))

	rec := env.do(t, http.MethodGet, "/favorites?includeWeather=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[favoritesBody](t, rec)
	require.Len(t, body.Favorites, 1)
	assert.Nil(t, body.Favorites[0].Current)
}

func TestSettings(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, settings.Defaults(), decode[settings.Settings](t, rec))

	rec = env.do(t, http.MethodPut, "/settings", `{"unit":"Fahrenheit","theme":"dark"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, settings.Settings{Unit: types.Fahrenheit, Theme: icons.ThemeDark}, decode[settings.Settings](t, rec))

	rec = env.do(t, http.MethodPut, "/settings", `{"unit":"rankine"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/settings", "")
	assert.Equal(t, types.Fahrenheit, decode[settings.Settings](t, rec).Unit)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
