package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	docsconn "github.com/custodia-labs/docsmd/internal/connectors/google/docs"
	"github.com/custodia-labs/docsmd/internal/core/domain"
	"github.com/custodia-labs/docsmd/internal/core/ports/driven"
	"github.com/custodia-labs/docsmd/internal/core/ports/driving"
	"github.com/custodia-labs/docsmd/internal/logger"
	"github.com/custodia-labs/docsmd/internal/markdown"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// ExportService converts documents and writes them to disk.
type ExportService struct {
	registry driven.NormaliserRegistry
	fetcher  driven.DocumentFetcher
	store    driven.ExportStore
	now      func() time.Time
}

// NewExportService creates a new export service.
// The fetcher is optional; without it only Convert and History work.
// The store is optional; without it exports are not recorded and
// unchanged revisions are detected from front matter alone.
func NewExportService(
	registry driven.NormaliserRegistry,
	fetcher driven.DocumentFetcher,
	store driven.ExportStore,
) *ExportService {
	return &ExportService{
		registry: registry,
		fetcher:  fetcher,
		store:    store,
		now:      time.Now,
	}
}

// Convert renders a Docs API document given as JSON.
func (s *ExportService) Convert(ctx context.Context, documentJSON []byte) (*domain.Document, error) {
	if len(documentJSON) == 0 {
		return nil, fmt.Errorf("%w: empty document", domain.ErrInvalidInput)
	}

	return s.normalise(ctx, &domain.RawDocument{
		MIMEType: domain.MIMETypeGoogleDocJSON,
		Content:  documentJSON,
	})
}

// Fetch downloads and renders a document given by ID or URL.
func (s *ExportService) Fetch(ctx context.Context, ref string) (*domain.Document, error) {
	if s.fetcher == nil {
		return nil, domain.ErrAuthRequired
	}

	documentID, err := docsconn.ParseDocumentRef(ref)
	if err != nil {
		return nil, err
	}

	raw, err := s.fetcher.Fetch(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", documentID, err)
	}

	return s.normalise(ctx, raw)
}

// Export fetches a document and writes it as Markdown.
// An unchanged revision is skipped unless req.Force is set.
func (s *ExportService) Export(ctx context.Context, req domain.ExportRequest) (*domain.ExportResult, error) {
	doc, err := s.Fetch(ctx, req.Ref)
	if err != nil {
		return nil, err
	}
	defer logger.Timed("export " + doc.DocumentID)()

	dir := req.OutputDir
	if dir == "" {
		dir = "."
	}
	path := targetPath(dir, doc)

	if !req.Force {
		if record, ok := s.unchanged(ctx, doc, path); ok {
			logger.Info("%s is at revision %s, skipping", path, doc.RevisionID)
			return &domain.ExportResult{Record: *record, Skipped: true}, nil
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(doc.Content), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}

	record := domain.ExportRecord{
		DocumentID: doc.DocumentID,
		RevisionID: doc.RevisionID,
		Title:      doc.Title,
		Path:       path,
		ExportedAt: s.now(),
	}

	if req.HTML {
		htmlPath, err := writeHTML(doc, path)
		if err != nil {
			return nil, err
		}
		record.HTMLPath = htmlPath
	}

	if err := s.record(ctx, record); err != nil {
		return nil, err
	}

	logger.Info("exported %s to %s", doc.DocumentID, path)
	return &domain.ExportResult{Record: record}, nil
}

// List returns one page of Google Docs visible to the user.
func (s *ExportService) List(ctx context.Context, opts domain.ListOptions) (*domain.DocumentPage, error) {
	if s.fetcher == nil {
		return nil, domain.ErrAuthRequired
	}
	return s.fetcher.List(ctx, opts)
}

// History returns the export ledger, most recent first.
func (s *ExportService) History(ctx context.Context) ([]domain.ExportRecord, error) {
	if s.store == nil {
		return []domain.ExportRecord{}, nil
	}
	return s.store.List(ctx)
}

func (s *ExportService) normalise(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("normalise: %w", domain.ErrUnsupportedType)
	}

	result, err := s.registry.Normalise(ctx, raw)
	if err != nil {
		return nil, err
	}
	return &result.Document, nil
}

// unchanged reports whether path already holds doc's revision.
// The file's front matter must name the document and revision. A ledger
// entry, when present, must agree on revision and path; a file without
// one is backfilled into the ledger.
func (s *ExportService) unchanged(ctx context.Context, doc *domain.Document, path string) (*domain.ExportRecord, bool) {
	if doc.RevisionID == "" {
		return nil, false
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	meta, ok := readFrontMatter(path)
	if !ok || meta.DocumentID != doc.DocumentID || meta.RevisionID != doc.RevisionID {
		return nil, false
	}

	if s.store != nil {
		record, err := s.store.Get(ctx, doc.DocumentID)
		switch {
		case err == nil:
			if record.RevisionID == doc.RevisionID && filepath.Clean(record.Path) == filepath.Clean(path) {
				return record, true
			}
			return nil, false
		case !errors.Is(err, domain.ErrNotFound):
			logger.Warn("reading export ledger: %v", err)
		}
	}

	record := domain.ExportRecord{
		DocumentID: doc.DocumentID,
		RevisionID: doc.RevisionID,
		Title:      doc.Title,
		Path:       path,
		ExportedAt: info.ModTime(),
	}
	if err := s.record(ctx, record); err != nil {
		logger.Warn("backfilling export ledger: %v", err)
	}
	return &record, true
}

// targetPath returns the file doc is written to. When the title's file
// already holds another exported document, the document ID is appended
// to the name.
func targetPath(dir string, doc *domain.Document) string {
	name := FileName(doc.Title, doc.DocumentID)
	path := filepath.Join(dir, name)

	meta, ok := readFrontMatter(path)
	if !ok || meta.DocumentID == "" || meta.DocumentID == doc.DocumentID {
		return path
	}

	alt := FileName(fmt.Sprintf("%s (%s)", strings.TrimSuffix(name, ".md"), doc.DocumentID), doc.DocumentID)
	logger.Debug("%s holds document %s, writing %s instead", path, meta.DocumentID, alt)
	return filepath.Join(dir, alt)
}

// readFrontMatter returns the docsmd front matter of the file at path.
func readFrontMatter(path string) (markdown.FrontMatter, bool) {
	source, err := os.ReadFile(path)
	if err != nil {
		return markdown.FrontMatter{}, false
	}
	meta, _, err := markdown.ParseFrontMatter(source)
	if err != nil {
		logger.Debug("%s has no readable front matter: %v", path, err)
		return markdown.FrontMatter{}, false
	}
	return meta, true
}

func (s *ExportService) record(ctx context.Context, record domain.ExportRecord) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Save(ctx, record); err != nil {
		return fmt.Errorf("record export: %w", err)
	}
	return nil
}

// writeHTML renders the document body next to the Markdown file.
func writeHTML(doc *domain.Document, mdPath string) (string, error) {
	html, err := markdown.RenderHTML([]byte(doc.Content))
	if err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}

	htmlPath := strings.TrimSuffix(mdPath, filepath.Ext(mdPath)) + ".html"
	if err := os.WriteFile(htmlPath, html, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", htmlPath, err)
	}
	return htmlPath, nil
}
