// Package oauth provides the loopback callback server and browser helpers
// used by `docsmd auth login`.
package oauth

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/custodia-labs/docsmd/internal/logger"
)

// CallbackPath is the redirect path registered with Google.
const CallbackPath = "/callback"

// portSearchRange is how many ports above a busy configured port are tried.
const portSearchRange = 10

// ErrStateMismatch indicates the callback state did not match the request.
var ErrStateMismatch = errors.New("oauth: state mismatch")

// CallbackServer receives the authorization code on a loopback address.
type CallbackServer struct {
	mu            sync.Mutex
	port          int
	expectedState string
	codeChan      chan string
	errChan       chan error
	server        *http.Server
	listener      net.Listener
}

// NewCallbackServer creates a callback server that accepts only expectedState.
// A port of 0 picks a free port on Start.
func NewCallbackServer(port int, expectedState string) *CallbackServer {
	return &CallbackServer{
		port:          port,
		expectedState: expectedState,
		codeChan:      make(chan string, 1),
		errChan:       make(chan error, 1),
	}
}

// Start listens on 127.0.0.1 and serves the callback in the background.
func (s *CallbackServer) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mux := http.NewServeMux()
	mux.HandleFunc(CallbackPath, s.handleCallback)

	s.server = &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	addr := fmt.Sprintf("127.0.0.1:%d", s.port)
	listener, err := net.Listen("tcp", addr)
	if err != nil && s.port != 0 {
		listener, err = s.listenNear(err)
	}
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener

	if tcpAddr, ok := listener.Addr().(*net.TCPAddr); ok {
		s.port = tcpAddr.Port
	}

	srv := s.server
	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.fail(err)
		}
	}()

	return nil
}

func (s *CallbackServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if errParam := q.Get("error"); errParam != "" {
		s.fail(fmt.Errorf("oauth error: %s - %s", errParam, q.Get("error_description")))
		fmt.Fprint(w, resultPage("Authorization failed", q.Get("error_description")))
		return
	}

	if q.Get("state") != s.expectedState {
		s.fail(ErrStateMismatch)
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, resultPage("Authorization failed", "Invalid state parameter."))
		return
	}

	code := q.Get("code")
	if code == "" {
		s.fail(errors.New("no authorization code received"))
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, resultPage("Authorization failed", "No code received."))
		return
	}

	select {
	case s.codeChan <- code:
	default:
	}

	fmt.Fprint(w, resultPage("docsmd is signed in", "You can close this window and return to the terminal."))
}

// fail records the first error; later ones are dropped.
func (s *CallbackServer) fail(err error) {
	select {
	case s.errChan <- err:
	default:
	}
}

// WaitForCode blocks until a code arrives, the callback fails, or ctx ends.
func (s *CallbackServer) WaitForCode(ctx context.Context) (string, error) {
	select {
	case code := <-s.codeChan:
		return code, nil
	case err := <-s.errChan:
		return "", err
	case <-ctx.Done():
		return "", fmt.Errorf("waiting for authorization callback: %w", ctx.Err())
	}
}

// Stop shuts down the callback server. Stopping twice is safe.
func (s *CallbackServer) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := s.server.Shutdown(ctx)
	s.server = nil
	return err
}

// Port returns the port the server is listening on.
func (s *CallbackServer) Port() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.port
}

// RedirectURI returns the redirect URI to register in the auth request.
func (s *CallbackServer) RedirectURI() string {
	return fmt.Sprintf("http://localhost:%d%s", s.Port(), CallbackPath)
}

func resultPage(title, message string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>docsmd</title></head>
<body style="font-family: sans-serif; text-align: center; margin-top: 15vh">
<h1>%s</h1>
<p>%s</p>
</body>
</html>`, html.EscapeString(title), html.EscapeString(message))
}

// OpenBrowser opens the default browser to the given URL.
func OpenBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}

// listenNear binds the first free port above the configured one.
// cause is returned when none is free.
func (s *CallbackServer) listenNear(cause error) (net.Listener, error) {
	end := min(s.port+portSearchRange, 65535)
	port, err := FindAvailablePort(s.port+1, end)
	if err != nil {
		return nil, cause
	}
	logger.Warn("port %d is busy, using %d for the OAuth callback", s.port, port)
	return net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
}

// FindAvailablePort returns the first port in [startPort, endPort] that
// can be bound on 127.0.0.1.
func FindAvailablePort(startPort, endPort int) (int, error) {
	for port := startPort; port <= endPort; port++ {
		listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
		if err == nil {
			listener.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port in range %d-%d", startPort, endPort)
}
