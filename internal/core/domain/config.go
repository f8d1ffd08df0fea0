package domain

// Configuration keys.
const (
	ConfigGoogleClientID     = "google.client_id"
	ConfigGoogleClientSecret = "google.client_secret"
	ConfigOAuthPort          = "oauth.port"
	ConfigExportDir          = "export.dir"
	ConfigExportHTML         = "export.html"
	ConfigDocsRPS            = "ratelimit.docs_rps"
)

// ConfigKeys lists every key the CLI accepts in `docsmd config`.
var ConfigKeys = []string{
	ConfigGoogleClientID,
	ConfigGoogleClientSecret,
	ConfigOAuthPort,
	ConfigExportDir,
	ConfigExportHTML,
	ConfigDocsRPS,
}
