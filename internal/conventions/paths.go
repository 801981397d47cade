package conventions

const (
	// DefaultDataDir is the default spy data directory name (relative to home).
	DefaultDataDir = ".spy"
	// DBFile is the filename for the SQLite database.
	DBFile = "spy.db"

	// TempFilePrefix is the prefix of the in-flight temporary files the
	// directory repository writes before atomically renaming them. Job names
	// can't start with a dot, so these never collide with a record.
	TempFilePrefix = ".spy-tmp-"
)

// TempFileName returns the temporary file name for an in-flight record write.
func TempFileName(id string) string {
	return TempFilePrefix + id
}
