package dialog

// SettingsStore is the interface the dialogs require from the host
// application's settings mechanism. Format and file location are the
// host's concern.
type SettingsStore interface {
	ReadSetting(key string) (string, bool)
	WriteSetting(key, value string)
}

const lastPathKey = "lastPath"

// PathMemory remembers the last browsed directory across sessions through
// a host settings store. It is injected into each dialog instance; there
// is no hidden process-wide global, so independent dialogs with separate
// stores cannot clobber each other.
type PathMemory struct {
	store  SettingsStore
	cached string
}

// NewPathMemory creates a PathMemory backed by store. A nil store degrades
// to in-memory only (remembered for the process lifetime).
func NewPathMemory(store SettingsStore) *PathMemory {
	pm := &PathMemory{store: store}
	if store != nil {
		if path, ok := store.ReadSetting(lastPathKey); ok {
			pm.cached = path
		}
	}
	return pm
}

// Get returns the remembered directory, or "" when none is remembered or
// the remembered path no longer exists as a directory. The filesystem may
// have changed between sessions, so the path is re-validated on every read.
func (pm *PathMemory) Get() string {
	if pm.cached == "" || !IsDirectory(pm.cached) {
		return ""
	}
	return pm.cached
}

// Set remembers path and writes it through to the store.
func (pm *PathMemory) Set(path string) {
	pm.cached = path
	if pm.store != nil {
		pm.store.WriteSetting(lastPathKey, path)
	}
}
