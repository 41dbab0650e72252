package docserver_test

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validoc/pkg/docserver"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestListenAndServe(t *testing.T) {
	t.Parallel()

	t.Run("stops on context cancel", func(t *testing.T) {
		t.Parallel()

		cfg := docserver.DefaultConfig()
		cfg.Addr = freeAddr(t)
		cfg.ShutdownTimeout = 100 * time.Millisecond

		srv, err := docserver.New(newRegistry(t))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		done := make(chan error, 1)
		go func() { done <- docserver.ListenAndServe(ctx, cfg, srv, nil) }()

		var resp *http.Response
		for range 50 {
			resp, err = http.Get("http://" + cfg.Addr + "/healthz")
			if err == nil {
				break
			}
			time.Sleep(20 * time.Millisecond)
		}
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.NoError(t, resp.Body.Close())

		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			require.Fail(t, "server did not stop")
		}
	})

	t.Run("reports bind failure", func(t *testing.T) {
		t.Parallel()

		l, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer l.Close()

		cfg := docserver.DefaultConfig()
		cfg.Addr = l.Addr().String()

		err = docserver.ListenAndServe(context.Background(), cfg, http.NotFoundHandler(), nil)
		assert.ErrorIs(t, err, docserver.ErrStart)
	})
}
