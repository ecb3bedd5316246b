package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GetTimezone(t *testing.T) {
	svc, err := NewService()
	require.NoError(t, err)

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      string
	}{
		{"Warsaw, Poland", 52.2297, 21.0122, "Europe/Warsaw"},
		{"New York City", 40.7128, -74.0060, "America/New_York"},
		{"London, UK", 51.5074, -0.1278, "Europe/London"},
		{"Tokyo, Japan", 35.6762, 139.6503, "Asia/Tokyo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetTimezone(tt.latitude, tt.longitude)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Location(t *testing.T) {
	svc, err := NewService()
	require.NoError(t, err)

	loc, err := svc.Location(35.6762, 139.6503)
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())
}

func TestNewService_Singleton(t *testing.T) {
	a, err := NewService()
	require.NoError(t, err)
	b, err := NewService()
	require.NoError(t, err)
	assert.Same(t, a.(*service), b.(*service))
}
