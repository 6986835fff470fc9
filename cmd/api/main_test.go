package main

import (
	"os"
	"os/signal"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagestone/sagestone/config"
	"github.com/sagestone/sagestone/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Server:      config.ServerConfig{Host: "127.0.0.1", Port: 0, CORSAllowOrigin: "*"},
		Security:    config.SecurityConfig{JWTSecret: "test-secret", JWTExpiry: time.Hour},
		RateLimit:   config.RateLimitConfig{AuthPerMinute: 10},
	}
}

func TestRunServer_GracefulShutdown(t *testing.T) {
	var once sync.Once
	signalNotify = func(c chan<- os.Signal, sig ...os.Signal) {
		once.Do(func() {
			go func() {
				time.Sleep(100 * time.Millisecond)
				c <- os.Interrupt
			}()
		})
	}
	defer func() { signalNotify = signal.Notify }()

	done := make(chan error, 1)
	go func() {
		done <- runServer(testConfig(), logger.NewNoopLogger())
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runServer did not return after the shutdown signal")
	}
}

func TestRunServer_InitializeError(t *testing.T) {
	cfg := testConfig()
	cfg.Security.JWTSecret = ""

	err := runServer(cfg, logger.NewNoopLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credential service")
}
