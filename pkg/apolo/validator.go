package apolo

// FileValidator inspects candidate files for deployment-blocking or advisory
// issues. One file's read failure must never prevent validation of the rest.
type FileValidator interface {
	// ValidateAll accumulates findings across the whole candidate set,
	// skipping files outside the core DB-script extension set.
	ValidateAll(files []CandidateFile) Findings
}
