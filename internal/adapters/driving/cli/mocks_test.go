package cli

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsmd/internal/adapters/driven/auth"
	"github.com/custodia-labs/docsmd/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docsmd/internal/core/domain"
	"github.com/custodia-labs/docsmd/internal/core/ports/driving"
	"github.com/custodia-labs/docsmd/internal/core/services"
	"github.com/custodia-labs/docsmd/internal/normalisers"
	"github.com/custodia-labs/docsmd/internal/normalisers/gdocs"
)

// Ensure mockExportService implements the interface.
var _ driving.ExportService = (*mockExportService)(nil)

// mockExportService is a mock implementation of driving.ExportService.
type mockExportService struct {
	results map[string]*domain.ExportResult
	page    *domain.DocumentPage
	history []domain.ExportRecord
	err     error

	requests []domain.ExportRequest
	listOpts domain.ListOptions
}

func (m *mockExportService) Convert(_ context.Context, _ []byte) (*domain.Document, error) {
	return nil, m.err
}

func (m *mockExportService) Fetch(_ context.Context, _ string) (*domain.Document, error) {
	return nil, m.err
}

func (m *mockExportService) Export(_ context.Context, req domain.ExportRequest) (*domain.ExportResult, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	result, ok := m.results[req.Ref]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return result, nil
}

func (m *mockExportService) List(_ context.Context, opts domain.ListOptions) (*domain.DocumentPage, error) {
	m.listOpts = opts
	return m.page, m.err
}

func (m *mockExportService) History(_ context.Context) ([]domain.ExportRecord, error) {
	return m.history, m.err
}

// mockFetcher answers CheckStatus for auth status tests.
type mockFetcher struct {
	err error
}

func (m *mockFetcher) Fetch(_ context.Context, _ string) (*domain.RawDocument, error) {
	return nil, m.err
}

func (m *mockFetcher) List(_ context.Context, _ domain.ListOptions) (*domain.DocumentPage, error) {
	return &domain.DocumentPage{}, m.err
}

func (m *mockFetcher) CheckStatus(_ context.Context) error {
	return m.err
}

// setupTestApp injects an application built around svc and restores the
// defaults when the test ends. A nil svc wires the real offline service.
func setupTestApp(t *testing.T, svc driving.ExportService) *app {
	t.Helper()

	if svc == nil {
		svc = services.NewExportService(normalisers.NewRegistry(gdocs.New()), nil, memory.NewExportStore())
	}

	a := &app{
		config:  memory.NewConfigStore(nil),
		session: auth.NewSession("", "", auth.NewTokenFile(t.TempDir())),
		export:  svc,
	}

	originalNewApp := newApp
	current = nil
	resetFlags()
	newApp = func(context.Context, appOptions) (*app, error) {
		return a, nil
	}
	t.Cleanup(func() {
		newApp = originalNewApp
		current = nil
		resetFlags()
	})

	return a
}

// resetFlags restores package flag variables between executions.
func resetFlags() {
	verbose = false
	configDir = ""
	convertOutput, convertHTML, convertWatch = "", false, false
	exportOutputDir, exportForce, exportHTML, exportNoLedger = "", false, false, false
	listLimit, listName, listPageToken, listJSON = 20, "", "", false
	historyJSON = false
	inspectJSON = false
	authClientID, authClientSecret, authNoBrowser, authCheck = "", "", false, false
	mcpHTTPAddr = ""
	resetContexts(rootCmd)
}

// resetContexts clears the context cobra stores on each command during
// execution, so the next ExecuteContext reaches every subcommand.
func resetContexts(cmd *cobra.Command) {
	cmd.SetContext(nil)
	for _, c := range cmd.Commands() {
		resetContexts(c)
	}
}

// execute runs the root command with args and returns everything written.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithInput(t, nil, args...)
}

func executeWithInput(t *testing.T, in io.Reader, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	if in == nil {
		in = new(bytes.Buffer)
	}
	rootCmd.SetIn(in)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		resetFlags()
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
