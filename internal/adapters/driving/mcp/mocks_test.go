package mcp

import (
	"context"

	"github.com/custodia-labs/docsmd/internal/core/domain"
	"github.com/custodia-labs/docsmd/internal/core/ports/driving"
)

// Ensure mockExportService implements the interface.
var _ driving.ExportService = (*mockExportService)(nil)

// mockExportService is a mock implementation of driving.ExportService.
type mockExportService struct {
	document *domain.Document
	page     *domain.DocumentPage
	history  []domain.ExportRecord
	err      error

	convertInput []byte
	fetchRef     string
	listOpts     domain.ListOptions
}

func (m *mockExportService) Convert(_ context.Context, documentJSON []byte) (*domain.Document, error) {
	m.convertInput = documentJSON
	return m.document, m.err
}

func (m *mockExportService) Fetch(_ context.Context, ref string) (*domain.Document, error) {
	m.fetchRef = ref
	return m.document, m.err
}

func (m *mockExportService) Export(_ context.Context, _ domain.ExportRequest) (*domain.ExportResult, error) {
	return nil, m.err
}

func (m *mockExportService) List(_ context.Context, opts domain.ListOptions) (*domain.DocumentPage, error) {
	m.listOpts = opts
	return m.page, m.err
}

func (m *mockExportService) History(_ context.Context) ([]domain.ExportRecord, error) {
	return m.history, m.err
}
