package apolo

// FileCollector abstracts candidate discovery for testability.
// Implementations walk an extracted archive tree and return eligible files
// in deterministic processing order.
type FileCollector interface {
	// Collect recursively gathers eligible files under root.
	// A totally inaccessible root is a fatal error; unreadable subtrees are
	// reported as warnings in the result instead.
	Collect(root string) (CollectionResult, error)
}
