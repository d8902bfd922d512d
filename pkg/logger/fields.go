package logger

// Shared log field names. Keeping the names in one place keeps log queries
// consistent across handlers and services.
const (
	// FieldTraceID trace id field
	FieldTraceID = "traceId"

	// FieldNoteID note identifier field
	FieldNoteID = "noteId"

	// FieldFileID file record id field
	FieldFileID = "fileId"

	// FieldPath blob path field
	FieldPath = "path"

	// FieldSize file size field
	FieldSize = "size"

	// FieldDuration elapsed time field
	FieldDuration = "duration"

	// FieldError error field
	FieldError = "error"
)
