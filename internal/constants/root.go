package constants

const (
	AppName           = "learntrack"
	Version           = "v0.1.0"
	DefaultConfigPath = "~/.config/learntrack/learntrack.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// StorageKey is the single well-known key the snapshot is stored under
	StorageKey = "learningTrackerData"

	// SnapshotVersion tags every persisted snapshot. Any version found in
	// stored or imported data is accepted as-is; there is no migration logic.
	SnapshotVersion = "1.0"

	// Backup constants
	BackupFilePrefix = "learning-tracker-backup-"
	BackupFileSuffix = ".json"

	// DefaultTotalDays is the challenge length used when none is given
	DefaultTotalDays = 30
)

// DurationChoices are the challenge lengths offered by the new-challenge form.
var DurationChoices = []int{7, 15, 30, 45, 60, 90, 100}
