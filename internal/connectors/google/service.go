package google

import (
	"context"

	"golang.org/x/oauth2"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// userAgent identifies docsmd to Google APIs.
const userAgent = "docsmd"

// Scopes are the OAuth2 scopes docsmd requests.
var Scopes = []string{
	docs.DocumentsReadonlyScope,
	drive.DriveReadonlyScope,
}

// NewDocsService creates a Google Docs API service using the provided TokenSource.
// Extra options are appended, which lets tests point the client at a fake server.
func NewDocsService(ctx context.Context, ts oauth2.TokenSource, opts ...option.ClientOption) (*docs.Service, error) {
	return docs.NewService(ctx, clientOptions(ts, opts)...)
}

// NewDriveService creates a Google Drive API service using the provided TokenSource.
func NewDriveService(ctx context.Context, ts oauth2.TokenSource, opts ...option.ClientOption) (*drive.Service, error) {
	return drive.NewService(ctx, clientOptions(ts, opts)...)
}

func clientOptions(ts oauth2.TokenSource, extra []option.ClientOption) []option.ClientOption {
	opts := []option.ClientOption{option.WithUserAgent(userAgent)}
	if ts != nil {
		opts = append(opts, option.WithTokenSource(ts))
	}
	return append(opts, extra...)
}
