// Package gpr parses G-code program text into a structured, typed
// representation suitable for toolpath analysis or re-generation.
//
// The pipeline has three stages. LexBlock turns one line of text into a
// sequence of string tokens. A token-level parser recognizes one chunk at
// a time (comment, word-address, percent marker, isolated word). A block
// assembler wraps chunk parsing with the optional leading block-delete
// slash and the optional N line number, and the program assembler folds
// every non-blank line of the input through the whole chain:
//
//	raw text → LexBlock → tokens → chunks → Block → Program
//
// All entry points are pure functions over their input: no globals, no
// I/O, fully re-entrant, safe to call concurrently on independent inputs.
// Malformed input is reported as a *Error carrying the error kind, the
// source position and the unconsumed remainder; nothing in the parsing
// path panics on bad input.
package gpr

// Version is the library version, reported by cmd/gpr.
const Version = "0.1.0"
