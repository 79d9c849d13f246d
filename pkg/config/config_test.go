//go:build !integration

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_PASSWORD", "pw")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 2.0, cfg.Recommend.BudgetWeight)
	require.Equal(t, 1.0, cfg.Recommend.RatingWeight)
	require.Equal(t, 3, cfg.Recommend.TopK)
	require.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	require.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("RECOMMEND_TOP_K", "5")
	t.Setenv("RECOMMEND_BUDGET_WEIGHT", "1.5")
	t.Setenv("REQUEST_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Recommend.TopK)
	require.Equal(t, 1.5, cfg.Recommend.BudgetWeight)
	require.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
}

func TestLoadValidation(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
		msg  string
	}{
		{
			name: "MissingJWTSecret",
			env:  map[string]string{"JWT_SECRET": "", "DB_PASSWORD": "pw"},
			msg:  "missing jwt secret",
		},
		{
			name: "MissingDatabasePassword",
			env:  map[string]string{"JWT_SECRET": "s", "DB_PASSWORD": ""},
			msg:  "missing database password",
		},
		{
			name: "NonPositiveTopK",
			env:  map[string]string{"JWT_SECRET": "s", "DB_PASSWORD": "pw", "RECOMMEND_TOP_K": "0"},
			msg:  "recommend top k must be positive",
		},
		{
			name: "NegativeWeight",
			env:  map[string]string{"JWT_SECRET": "s", "DB_PASSWORD": "pw", "RECOMMEND_RATING_WEIGHT": "-1"},
			msg:  "recommend weights cannot be negative",
		},
		{
			name: "NegativeBreakerMaxRequests",
			env:  map[string]string{"JWT_SECRET": "s", "DB_PASSWORD": "pw", "BREAKER_MAX_REQUESTS": "-1"},
			msg:  "breaker settings cannot be negative",
		},
		{
			name: "NegativeBreakerThreshold",
			env:  map[string]string{"JWT_SECRET": "s", "DB_PASSWORD": "pw", "BREAKER_FAILURE_THRESHOLD": "-3"},
			msg:  "breaker settings cannot be negative",
		},
		{
			name: "NegativeBreakerTimeout",
			env:  map[string]string{"JWT_SECRET": "s", "DB_PASSWORD": "pw", "BREAKER_TIMEOUT": "-5s"},
			msg:  "breaker settings cannot be negative",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.EqualError(t, err, tc.msg)
		})
	}
}
