// Package token scans UCL source into a token stream.
//
// Bytes are classified through a precomputed 256-entry table. Strings
// come in three dialects (JSON-style, raw single-quoted, heredoc) with
// different escape handling; numeric literals run through a small
// state machine that understands base prefixes and time/size
// magnitude suffixes. Escape-free strings are handed back as borrowed
// slices of the input.
package token
