package config_test

import (
	"testing"
	"time"

	"github.com/ratel-online/tricks/config"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()
	require.Equal(t, ":9999", cfg.TCPAddr)
	require.Equal(t, ":9998", cfg.WSAddr)
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, "cards.jpg", cfg.Faces)
	require.Equal(t, 13, cfg.HandSize)
	require.Equal(t, int64(0), cfg.Seed)
	require.Equal(t, time.Minute, cfg.Sweep)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TRICKS_TCP_ADDR", ":7000")
	t.Setenv("TRICKS_WS_ADDR", "")
	t.Setenv("TRICKS_HAND_SIZE", "5")
	t.Setenv("TRICKS_SEED", "42")
	t.Setenv("TRICKS_SWEEP_SECONDS", "10")
	cfg := config.Load()
	require.Equal(t, ":7000", cfg.TCPAddr)
	require.Equal(t, "", cfg.WSAddr)
	require.Equal(t, 5, cfg.HandSize)
	require.Equal(t, int64(42), cfg.Seed)
	require.Equal(t, 10*time.Second, cfg.Sweep)
}

func TestLoadIgnoresBadNumbers(t *testing.T) {
	t.Setenv("TRICKS_HAND_SIZE", "many")
	require.Equal(t, 13, config.Load().HandSize)
}
