// Package memory provides in-memory implementations of driven ports.
// They back tests and the `--no-ledger` mode of the CLI.
package memory
