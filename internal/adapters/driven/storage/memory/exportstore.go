package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/docsmd/internal/core/domain"
	"github.com/custodia-labs/docsmd/internal/core/ports/driven"
)

// Ensure ExportStore implements the interface.
var _ driven.ExportStore = (*ExportStore)(nil)

// ExportStore is an in-memory implementation of driven.ExportStore.
type ExportStore struct {
	mu      sync.RWMutex
	records map[string]domain.ExportRecord
}

// NewExportStore creates a new in-memory export ledger.
func NewExportStore() *ExportStore {
	return &ExportStore{
		records: make(map[string]domain.ExportRecord),
	}
}

// Save stores or updates the record for a document.
func (s *ExportStore) Save(_ context.Context, record domain.ExportRecord) error {
	if record.DocumentID == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.DocumentID] = record
	return nil
}

// Get retrieves the record for a document.
func (s *ExportStore) Get(_ context.Context, documentID string) (*domain.ExportRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[documentID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

// List returns all records, most recent export first.
func (s *ExportStore) List(_ context.Context) ([]domain.ExportRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.ExportRecord, 0, len(s.records))
	for _, record := range s.records {
		result = append(result, record)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].ExportedAt.Equal(result[j].ExportedAt) {
			return result[i].DocumentID < result[j].DocumentID
		}
		return result[i].ExportedAt.After(result[j].ExportedAt)
	})
	return result, nil
}

// Delete removes the record for a document.
func (s *ExportStore) Delete(_ context.Context, documentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[documentID]; !ok {
		return domain.ErrNotFound
	}
	delete(s.records, documentID)
	return nil
}
