// Package files provides file-related functionality organized into sub-packages.
//
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - collector: Candidate file discovery, filtering and deterministic ordering
//
// The split keeps the collector filesystem-agnostic: production code walks the
// OS filesystem while tests run against the in-memory implementation.
package files
