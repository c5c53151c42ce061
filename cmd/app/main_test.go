package main

import (
	"context"
	"io"
	"log/slog"
	nethttp "net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJobManager struct {
	mock.Mock
}

func (m *MockJobManager) StopAll() {
	m.Called()
}

func quietEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(nethttp.StatusOK, "Healthy")
	})
	return e
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServe_StopsServerAndJobsOnSignal(t *testing.T) {
	e := quietEcho()
	jobManager := new(MockJobManager)
	jobManager.On("StopAll").Return().Once()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, e, "127.0.0.1:0", jobManager, discardLogger())
	}()

	require.Eventually(t, func() bool { return e.ListenerAddr() != nil }, 5*time.Second, 10*time.Millisecond)
	url := "http://" + e.ListenerAddr().String() + "/health"

	resp, err := nethttp.Get(url)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	cancel()

	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(shutdownTimeout + 5*time.Second):
		t.Fatal("serve did not return after cancellation")
	}

	jobManager.AssertExpectations(t)
	_, err = nethttp.Get(url)
	require.Error(t, err)
}

func TestServe_StopsJobsWhenServerFails(t *testing.T) {
	jobManager := new(MockJobManager)
	jobManager.On("StopAll").Return().Once()

	err := serve(t.Context(), quietEcho(), "127.0.0.1:-1", jobManager, discardLogger())

	require.Error(t, err)
	jobManager.AssertExpectations(t)
}
