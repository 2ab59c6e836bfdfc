package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Configuration fields.
	FieldFlavor   = "flavor"
	FieldJobs     = "jobs"
	FieldFormat   = "format"
	FieldMarkdown = "markdown"

	// Scan fields.
	FieldKind     = "kind"
	FieldSize     = "size"
	FieldSegments = "segments"
	FieldTokens   = "tokens"
	FieldDuration = "duration"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesScanned    = "files_scanned"
	FieldFilesFailed     = "files_failed"
	FieldTokensTotal     = "tokens_total"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Table fields.
	FieldName    = "name"
	FieldMembers = "members"
)
