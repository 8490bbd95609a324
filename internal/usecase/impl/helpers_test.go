package impl

import (
	"io"
	"log/slog"
	"time"

	"authsvc/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Store: config.StoreConfig{
			RequestTimeout: time.Second,
			Retry: config.RetryConfig{
				MaxRetries: 2,
				BaseDelay:  time.Millisecond,
			},
		},
		Session: config.SessionConfig{TTL: time.Hour},
	}
}
