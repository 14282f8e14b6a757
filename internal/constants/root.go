package constants

const (
	AppName            = "reptrack"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/reptrack/reptrack.db"
	Version            = "v0.2.0"

	// DateFormat is the standard calendar-date format used throughout the
	// application (YYYY-MM-DD). Habit logs are keyed on dates in this format,
	// never on timestamps.
	DateFormat = "2006-01-02"

	// LogFetchLimit caps per-habit log reads. Aggregates computed over this
	// window are rolling-year approximations, not all-time totals.
	LogFetchLimit = 365

	// MinutesPerSet is the fixed heuristic used to estimate training duration
	// from completed sets. It is an estimate, not measured time.
	MinutesPerSet = 2

	// ConsistencyWindowLogs is the per-habit log window used for the
	// consistency score and muscle balance calculations.
	ConsistencyWindowLogs = 30

	// ExpectedDaysDaily and ExpectedDaysWeekly are the expected completion
	// counts over a 30-day window used by the consistency score.
	ExpectedDaysDaily  = 30
	ExpectedDaysWeekly = 4

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "reptrack-"
	BackupFileSuffix = ".db"

	// DefaultHydrationGoalMl is the default daily water-intake goal.
	DefaultHydrationGoalMl = 2000
)
