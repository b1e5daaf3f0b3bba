package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldPath        = "path"
	FieldLine        = "line"
	FieldIndex       = "index"
	FieldCount       = "count"
	FieldSkipped     = "skipped"
	FieldKind        = "kind"
	FieldDescription = "description"
	FieldAmountCents = "amount_cents"
	FieldDate        = "date"
	FieldBackend     = "backend"
	FieldSheetsRef   = "sheets_ref"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentService = "service"
	ComponentBackend = "backend"
	ComponentWorker  = "worker"
)

// Operations defines standard operation names
const (
	OpAppend = "append"
	OpRemove = "remove"
	OpImport = "import"
	OpSave   = "save"
	OpLoad   = "load"
	OpSync   = "sync"
)
