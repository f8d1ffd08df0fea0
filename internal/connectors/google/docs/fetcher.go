package docs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/custodia-labs/docsmd/internal/connectors/google"
	"github.com/custodia-labs/docsmd/internal/core/domain"
	"github.com/custodia-labs/docsmd/internal/core/ports/driven"
	"github.com/custodia-labs/docsmd/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.DocumentFetcher = (*Fetcher)(nil)

// MimeTypeGoogleDoc is the Drive MIME type of native Google Docs.
const MimeTypeGoogleDoc = "application/vnd.google-apps.document"

const (
	// DefaultPageSize is used when ListOptions.PageSize is not set.
	DefaultPageSize = 20
	// MaxPageSize is the largest page the Drive API returns.
	MaxPageSize = 1000

	listFields = "nextPageToken, files(id, name, webViewLink, modifiedTime)"
)

// Config holds fetcher settings.
type Config struct {
	// DocsRequestsPerSecond overrides the Docs API rate limit when positive.
	DocsRequestsPerSecond float64

	// MaxRetries is how many times a rate-limited call is retried.
	MaxRetries int
}

// DefaultConfig returns the fetcher defaults.
func DefaultConfig() Config {
	return Config{MaxRetries: 2}
}

// Fetcher reads documents through the Docs API and lists them through Drive.
type Fetcher struct {
	docs         *docs.Service
	drive        *drive.Service
	docsLimiter  *google.RateLimiter
	driveLimiter *google.RateLimiter
	maxRetries   int
}

// NewFetcher creates a fetcher over existing API services.
func NewFetcher(docsSvc *docs.Service, driveSvc *drive.Service, cfg Config) *Fetcher {
	docsLimiter := google.NewRateLimiter(google.ServiceDocs)
	if cfg.DocsRequestsPerSecond > 0 {
		burst := int(cfg.DocsRequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		docsLimiter = google.NewRateLimiterWithConfig(google.RateLimitConfig{
			RequestsPerSecond: cfg.DocsRequestsPerSecond,
			BurstSize:         burst,
		})
	}

	retries := cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}

	return &Fetcher{
		docs:         docsSvc,
		drive:        driveSvc,
		docsLimiter:  docsLimiter,
		driveLimiter: google.NewRateLimiter(google.ServiceDrive),
		maxRetries:   retries,
	}
}

// Connect creates the Docs and Drive services from a token source and
// returns a fetcher over them. Extra client options are passed to both.
func Connect(ctx context.Context, ts oauth2.TokenSource, cfg Config, opts ...option.ClientOption) (*Fetcher, error) {
	docsSvc, err := google.NewDocsService(ctx, ts, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating docs service: %w", err)
	}
	driveSvc, err := google.NewDriveService(ctx, ts, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating drive service: %w", err)
	}
	return NewFetcher(docsSvc, driveSvc, cfg), nil
}

// Fetch retrieves a document and returns it serialised as Docs API JSON.
func (f *Fetcher) Fetch(ctx context.Context, documentID string) (*domain.RawDocument, error) {
	if documentID == "" {
		return nil, fmt.Errorf("%w: empty document ID", domain.ErrInvalidInput)
	}

	var doc *docs.Document
	err := f.call(ctx, f.docsLimiter, func() error {
		var callErr error
		doc, callErr = f.docs.Documents.Get(documentID).Context(ctx).Do()
		return callErr
	})
	if err != nil {
		return nil, fmt.Errorf("fetching document %s: %w", documentID, err)
	}

	content, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding document %s: %w", documentID, err)
	}

	logger.Debug("fetched document %s (revision %s, %d bytes)", doc.DocumentId, doc.RevisionId, len(content))

	return &domain.RawDocument{
		DocumentID: doc.DocumentId,
		URI:        ResolveWebURL(doc.DocumentId),
		MIMEType:   domain.MIMETypeGoogleDocJSON,
		Content:    content,
		Metadata: map[string]any{
			"title":       doc.Title,
			"revision_id": doc.RevisionId,
		},
	}, nil
}

// List returns one page of Google Docs matching opts.
func (f *Fetcher) List(ctx context.Context, opts domain.ListOptions) (*domain.DocumentPage, error) {
	call := f.drive.Files.List().
		Q(BuildQuery(opts.Query)).
		PageSize(pageSize(opts.PageSize)).
		Fields(listFields)
	if opts.PageToken != "" {
		call = call.PageToken(opts.PageToken)
	}

	var resp *drive.FileList
	err := f.call(ctx, f.driveLimiter, func() error {
		var callErr error
		resp, callErr = call.Context(ctx).Do()
		return callErr
	})
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	page := &domain.DocumentPage{
		Items:         make([]domain.DocumentRef, 0, len(resp.Files)),
		NextPageToken: resp.NextPageToken,
	}
	for _, file := range resp.Files {
		if file == nil {
			continue
		}
		webURL := file.WebViewLink
		if webURL == "" {
			webURL = ResolveWebURL(file.Id)
		}
		page.Items = append(page.Items, domain.DocumentRef{
			ID:           file.Id,
			Name:         file.Name,
			WebURL:       webURL,
			ModifiedTime: file.ModifiedTime,
		})
	}
	return page, nil
}

// CheckStatus lists a single file to verify the credentials.
func (f *Fetcher) CheckStatus(ctx context.Context) error {
	return f.call(ctx, f.driveLimiter, func() error {
		_, err := f.drive.Files.List().PageSize(1).Fields("files(id)").Context(ctx).Do()
		return err
	})
}

// call runs fn under the limiter, retrying rate-limited attempts.
func (f *Fetcher) call(ctx context.Context, limiter *google.RateLimiter, fn func() error) error {
	for attempt := 0; ; attempt++ {
		if !limiter.Allow() {
			logger.Debug("waiting for Google API rate limit")
			if err := limiter.Wait(ctx); err != nil {
				return err
			}
		}

		err := fn()
		if err == nil {
			return nil
		}
		if !google.IsRateLimited(err) {
			return toDomainError(err)
		}

		limiter.RecordRateLimitError(google.RetryAfter(err))
		if attempt >= f.maxRetries {
			return toDomainError(err)
		}
		logger.Warn("rate limited by Google API, retrying (attempt %d of %d)", attempt+1, f.maxRetries)
	}
}

// BuildQuery returns the Drive query selecting non-trashed Google Docs,
// ANDed with an optional caller clause.
func BuildQuery(extra string) string {
	q := fmt.Sprintf("mimeType='%s' and trashed=false", MimeTypeGoogleDoc)
	if extra = strings.TrimSpace(extra); extra != "" {
		q += " and " + extra
	}
	return q
}

func pageSize(n int64) int64 {
	switch {
	case n <= 0:
		return DefaultPageSize
	case n > MaxPageSize:
		return MaxPageSize
	default:
		return n
	}
}

// toDomainError maps Google API failures onto domain sentinels while
// keeping the API error in the chain.
func toDomainError(err error) error {
	switch {
	case google.IsNotFound(err):
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	case google.IsRateLimited(err):
		return fmt.Errorf("%w: %w", domain.ErrRateLimited, err)
	case google.IsUnauthorized(err):
		return fmt.Errorf("%w: %w", domain.ErrAuthRequired, err)
	default:
		return google.WrapError(err)
	}
}
