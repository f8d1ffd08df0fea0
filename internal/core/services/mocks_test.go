package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/docsmd/internal/core/domain"
	"github.com/custodia-labs/docsmd/internal/core/ports/driven"
)

// Ensure mockFetcher implements the interface.
var _ driven.DocumentFetcher = (*mockFetcher)(nil)

type mockFetcher struct {
	mu       sync.Mutex
	docs     map[string]string
	page     *domain.DocumentPage
	err      error
	fetched  []string
	listOpts []domain.ListOptions
}

func newMockFetcher() *mockFetcher {
	return &mockFetcher{docs: make(map[string]string)}
}

// put registers a document revision served by Fetch.
func (m *mockFetcher) put(id, title, revision, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[id] = fmt.Sprintf(`{
  "documentId": %q,
  "title": %q,
  "revisionId": %q,
  "body": {"content": [
    {"paragraph": {
      "paragraphStyle": {"namedStyleType": "NORMAL_TEXT"},
      "elements": [{"textRun": {"content": %q}}]
    }}
  ]}
}`, id, title, revision, text+"\n")
}

func (m *mockFetcher) Fetch(_ context.Context, documentID string) (*domain.RawDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetched = append(m.fetched, documentID)
	if m.err != nil {
		return nil, m.err
	}
	content, ok := m.docs[documentID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.RawDocument{
		DocumentID: documentID,
		URI:        "https://docs.google.com/document/d/" + documentID + "/edit",
		MIMEType:   domain.MIMETypeGoogleDocJSON,
		Content:    []byte(content),
	}, nil
}

func (m *mockFetcher) List(_ context.Context, opts domain.ListOptions) (*domain.DocumentPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listOpts = append(m.listOpts, opts)
	if m.err != nil {
		return nil, m.err
	}
	return m.page, nil
}

func (m *mockFetcher) CheckStatus(_ context.Context) error {
	return m.err
}

func (m *mockFetcher) fetchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.fetched)
}

// failingStore is an export store whose writes fail.
type failingStore struct {
	driven.ExportStore
}

func (failingStore) Get(_ context.Context, _ string) (*domain.ExportRecord, error) {
	return nil, domain.ErrNotFound
}

func (failingStore) Save(_ context.Context, _ domain.ExportRecord) error {
	return fmt.Errorf("disk full")
}

func markdownFor(title, documentID, revision, text string) string {
	var sb strings.Builder
	sb.WriteString("---\n")
	sb.WriteString("title: " + title + "\n")
	sb.WriteString("documentId: " + documentID + "\n")
	sb.WriteString("revisionId: " + revision + "\n")
	sb.WriteString("---\n")
	sb.WriteString(text + "\n\n")
	return sb.String()
}
