// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data under the docsmd home directory (~/.docsmd).
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
package file
