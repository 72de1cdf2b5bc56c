package config

import (
	"os"
	"time"

	"github.com/ratel-online/tricks/consts"
	"github.com/spf13/cast"
)

type Config struct {
	TCPAddr  string
	WSAddr   string
	HTTPAddr string
	// Faces is the card face sheet. A missing sheet is logged and ignored.
	Faces    string
	HandSize int
	Seed     int64
	Sweep    time.Duration
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := cast.ToIntE(v); err == nil {
			return i
		}
	}
	return def
}

func getenvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := cast.ToInt64E(v); err == nil {
			return i
		}
	}
	return def
}

func Load() Config {
	return Config{
		TCPAddr:  getenv("TRICKS_TCP_ADDR", ":9999"),
		WSAddr:   getenv("TRICKS_WS_ADDR", ":9998"),
		HTTPAddr: getenv("TRICKS_HTTP_ADDR", ":8080"),
		Faces:    getenv("TRICKS_FACES", "cards.jpg"),
		HandSize: getenvInt("TRICKS_HAND_SIZE", consts.HandSize),
		Seed:     getenvInt64("TRICKS_SEED", 0),
		Sweep:    time.Duration(getenvInt("TRICKS_SWEEP_SECONDS", int(consts.SweepTimeout/time.Second))) * time.Second,
	}
}
