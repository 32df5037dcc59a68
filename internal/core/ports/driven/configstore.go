package driven

// ConfigReader exposes typed lookups over dotted keys such as "llm.provider".
// Missing keys and type mismatches yield the zero value.
type ConfigReader interface {
	Get(key string) (any, bool)
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetStringSlice(key string) []string
}

// ConfigStore is a ConfigReader that can also be written back. The file
// store persists TOML; the env overlay layers LAUNCHPAD_* variables on top.
type ConfigStore interface {
	ConfigReader

	// Set updates a key. The file store writes through immediately.
	Set(key string, value any) error
	Save() error

	// Load discards in-memory state and re-reads the backing file.
	Load() error

	// Path is the backing file, or "" for stores without one.
	Path() string
}
