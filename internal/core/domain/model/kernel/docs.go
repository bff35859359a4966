// Package kernel provides core domain primitives and utilities for the dispatch tracker.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - Text: NFC normalization of display strings so storage and comparison are byte-stable
//   - Timestamp: an ISO-8601 UTC timestamp value object with millisecond precision
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
