package schema

// Custom string types for type safety.
type (
	// AnalysisMode represents the pair analyzer's classification of a commit pair.
	AnalysisMode string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run-history storage.
	DatabaseBackend string
)

// All analysis modes the pair analyzer can report.
const (
	SmartSelectionMode AnalysisMode = "smart_selection"
	NoChangesMode      AnalysisMode = "no_changes"
	FullRunMode        AnalysisMode = "full_run"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
)

// All run-history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // default
)

// ValidAnalysisModes lists the analyzer modes with dedicated interpretation
// policies. Unrecognized modes are not errors; they fall back to full_run.
var ValidAnalysisModes = map[AnalysisMode]struct{}{
	SmartSelectionMode: {},
	NoChangesMode:      {},
	FullRunMode:        {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	JSONOut: {},
}

// ValidDatabaseBackends lists all valid run-history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
