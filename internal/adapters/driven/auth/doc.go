// Package auth provides token providers for the Google APIs.
//
//   - Session: OAuth2 user session with PKCE login and token refresh,
//     persisted in a TokenFile.
//   - StaticTokenProvider: a fixed access token, e.g. from
//     `gcloud auth print-access-token`.
package auth
