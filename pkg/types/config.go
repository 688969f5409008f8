package types

// Config holds backend selection and parameters for opening a BlobStore.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// Supported backend names.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendBolt   = "bbolt"
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendMemory: true,
	BackendSQLite: true,
	BackendBolt:   true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return nil
}
