// Package log provides the diagnostic channel of the node.
//
// Components report rejected settings, operating mode transitions, radio
// driver outcomes, served requests and interpreter commands as Event values.
// It is separate from operational logging (slog): the diagnostic channel is a
// machine-readable trace that can be replayed with the apnode-log tool.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	cfg.Diagnostics = log.NewSlogAdapter(slog.Default())
//
//	// For deployments: write to binary file
//	fl, _ := log.NewFileLogger("/var/log/apnode/node.alog")
//
//	// Both, stamped with the boot session
//	cfg.Diagnostics = log.NewSessionLogger(sessionID, log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()), fl,
//	))
//
// # File Format
//
// Log files are a concatenation of CBOR-encoded events with the .alog
// extension. OpenFileLogger can cap the file size; the previous generation
// is kept beside it with the .1 suffix.
package log
