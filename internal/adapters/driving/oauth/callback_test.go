//nolint:noctx // Test file uses http.Get for convenience; context not required in tests
package oauth

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startServer starts a callback server on a random port.
func startServer(t *testing.T, state string) *CallbackServer {
	t.Helper()

	server := NewCallbackServer(0, state)
	require.NoError(t, server.Start())
	t.Cleanup(func() { _ = server.Stop() })
	return server
}

func callbackURL(server *CallbackServer, params url.Values) string {
	return fmt.Sprintf("http://127.0.0.1:%d%s?%s", server.Port(), CallbackPath, params.Encode())
}

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestCallbackServer_Start_PicksPort(t *testing.T) {
	server := startServer(t, "state")

	assert.NotZero(t, server.Port())
	assert.Equal(t, fmt.Sprintf("http://localhost:%d/callback", server.Port()), server.RedirectURI())
}

func TestCallbackServer_Start_PortInUse(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	busy := listener.Addr().(*net.TCPAddr).Port
	server := NewCallbackServer(busy, "state")
	require.NoError(t, server.Start())
	t.Cleanup(func() { _ = server.Stop() })

	assert.NotEqual(t, busy, server.Port())
	assert.Greater(t, server.Port(), busy)
	assert.LessOrEqual(t, server.Port(), busy+portSearchRange)
}

func TestCallbackServer_Start_NoPortNearby(t *testing.T) {
	var listeners []net.Listener
	t.Cleanup(func() {
		for _, l := range listeners {
			l.Close()
		}
	})

	first, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	listeners = append(listeners, first)
	busy := first.Addr().(*net.TCPAddr).Port
	if busy+portSearchRange > 65535 {
		t.Skip("ephemeral port too close to the top of the range")
	}
	for port := busy + 1; port <= busy+portSearchRange; port++ {
		l, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
		if err != nil {
			t.Skipf("port %d already taken by another process", port)
		}
		listeners = append(listeners, l)
	}

	err = NewCallbackServer(busy, "state").Start()
	assert.Error(t, err)
}

func TestCallbackServer_Success(t *testing.T) {
	server := startServer(t, "state-123")

	resp, err := http.Get(callbackURL(server, url.Values{"state": {"state-123"}, "code": {"auth-code"}}))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "signed in")

	code, err := server.WaitForCode(waitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, "auth-code", code)
}

func TestCallbackServer_Failures(t *testing.T) {
	tests := []struct {
		name    string
		params  url.Values
		wantErr string
	}{
		{
			name:    "state mismatch",
			params:  url.Values{"state": {"other"}, "code": {"c"}},
			wantErr: "state mismatch",
		},
		{
			name:    "missing state",
			params:  url.Values{"code": {"c"}},
			wantErr: "state mismatch",
		},
		{
			name:    "missing code",
			params:  url.Values{"state": {"state"}},
			wantErr: "no authorization code",
		},
		{
			name:    "provider error",
			params:  url.Values{"error": {"access_denied"}, "error_description": {"User said <no>"}},
			wantErr: "access_denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := startServer(t, "state")

			resp, err := http.Get(callbackURL(server, tt.params))
			require.NoError(t, err)
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			assert.Contains(t, string(body), "Authorization failed")
			assert.NotContains(t, string(body), "<no>")

			_, err = server.WaitForCode(waitCtx(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCallbackServer_WaitForCode_ContextDone(t *testing.T) {
	server := startServer(t, "state")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := server.WaitForCode(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCallbackServer_UnknownPath(t *testing.T) {
	server := startServer(t, "state")

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/other", server.Port()))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCallbackServer_StopTwice(t *testing.T) {
	server := NewCallbackServer(0, "state")
	assert.NoError(t, server.Stop())

	require.NoError(t, server.Start())
	assert.NoError(t, server.Stop())
	assert.NoError(t, server.Stop())
}

func TestResultPage_Escapes(t *testing.T) {
	page := resultPage("<b>title</b>", "a & b")

	assert.Contains(t, page, "&lt;b&gt;title&lt;/b&gt;")
	assert.Contains(t, page, "a &amp; b")
}

func TestFindAvailablePort(t *testing.T) {
	port, err := FindAvailablePort(18080, 18180)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, port, 18080)
	assert.LessOrEqual(t, port, 18180)
}

func TestFindAvailablePort_NoneFree(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()
	port := listener.Addr().(*net.TCPAddr).Port

	_, err = FindAvailablePort(port, port)
	assert.Error(t, err)
}

func TestFindAvailablePort_InvalidRange(t *testing.T) {
	_, err := FindAvailablePort(9000, 8000)
	assert.Error(t, err)
}
