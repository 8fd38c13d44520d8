package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		want  int
	}{
		{name: "unset", want: 42},
		{name: "valid", value: "100", set: true, want: 100},
		{name: "negative", value: "-10", set: true, want: -10},
		{name: "zero", value: "0", set: true, want: 0},
		{name: "not a number", value: "not-a-number", set: true, want: 42},
		{name: "float", value: "42.5", set: true, want: 42},
		{name: "empty", value: "", set: true, want: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOOTFORGE_TEST_INT", tt.value)
			if !tt.set {
				unsetForTest(t, "LOOTFORGE_TEST_INT")
			}
			assert.Equal(t, tt.want, getEnvAsInt("LOOTFORGE_TEST_INT", 42))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	const fallback = 5 * time.Minute
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"10m", 10 * time.Minute},
		{"30s", 30 * time.Second},
		{"2h", 2 * time.Hour},
		{"1h30m45s", time.Hour + 30*time.Minute + 45*time.Second},
		{"500ms", 500 * time.Millisecond},
		{"500us", 500 * time.Microsecond},
		{"not-a-duration", fallback},
		{"100", fallback},
		{"", fallback},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("LOOTFORGE_TEST_DURATION", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("LOOTFORGE_TEST_DURATION", fallback))
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("LOOTFORGE_TEST_STR", "")
	assert.Equal(t, "", getEnv("LOOTFORGE_TEST_STR", "fallback"), "set but empty wins over the default")

	unsetForTest(t, "LOOTFORGE_TEST_STR")
	assert.Equal(t, "fallback", getEnv("LOOTFORGE_TEST_STR", "fallback"))
}

func TestLoad_DatabasePoolConfig(t *testing.T) {
	t.Run("loads default database pool configuration", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 20, cfg.DBMaxConns, "Should use default max connections")
		assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime, "Should use default idle time")
		assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime, "Should use default lifetime")
	})

	t.Run("loads custom database pool configuration", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("DB_MAX_CONNS", "50")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "10m")
		t.Setenv("DB_MAX_CONN_LIFETIME", "1h")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 50, cfg.DBMaxConns, "Should use custom max connections")
		assert.Equal(t, 10*time.Minute, cfg.DBMaxConnIdleTime, "Should use custom idle time")
		assert.Equal(t, 1*time.Hour, cfg.DBMaxConnLifetime, "Should use custom lifetime")
	})

	t.Run("uses defaults for invalid pool config values", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("DB_MAX_CONNS", "not-a-number")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "invalid")
		t.Setenv("DB_MAX_CONN_LIFETIME", "bad-duration")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 20, cfg.DBMaxConns, "Should fallback to default for invalid max conns")
		assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime, "Should fallback to default for invalid idle time")
		assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime, "Should fallback to default for invalid lifetime")
	})
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("TEST_LIST_VAR", "")
	assert.Empty(t, getEnvAsList("TEST_LIST_VAR"))

	t.Setenv("TEST_LIST_VAR", " a ,b,,c ")
	assert.Equal(t, []string{"a", "b", "c"}, getEnvAsList("TEST_LIST_VAR"))
}
