package http

import (
	"testing"
	"time"

	"journal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestApplyServerTimeouts(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.Timeouts.ReadTimeout = 5 * time.Second
	cfg.HTTP.Timeouts.ReadHeaderTimeout = 2 * time.Second
	cfg.HTTP.Timeouts.WriteTimeout = 10 * time.Second
	cfg.HTTP.Timeouts.IdleTimeout = 120 * time.Second

	echoServer := echo.New()
	applyServerTimeouts(echoServer.Server, cfg)

	assert.Equal(t, 5*time.Second, echoServer.Server.ReadTimeout)
	assert.Equal(t, 2*time.Second, echoServer.Server.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, echoServer.Server.WriteTimeout)
	assert.Equal(t, 120*time.Second, echoServer.Server.IdleTimeout)
}
