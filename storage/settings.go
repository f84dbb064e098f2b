package storage

import (
	"encoding/json"
	"log"
	"os"
	"sync"
)

const settingsFileName = "settings.json"

// Settings is a persistent string key/value store backed by a JSON file in
// the data directory. Writes are flushed to disk immediately.
type Settings struct {
	mu     sync.RWMutex
	values map[string]string
	loaded bool
}

// NewSettings creates a settings store. The backing file is read lazily on
// first access.
func NewSettings() *Settings {
	return &Settings{values: make(map[string]string)}
}

func (s *Settings) loadLocked() {
	if s.loaded {
		return
	}
	s.loaded = true

	data, err := ReadDataFile(settingsFileName)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[STORAGE] Failed to read settings: %v", err)
		}
		return
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		log.Printf("[STORAGE] Failed to parse settings, starting fresh: %v", err)
		s.values = make(map[string]string)
	}
}

// ReadSetting returns the stored value for key and whether it was present.
func (s *Settings) ReadSetting(key string) (string, bool) {
	s.mu.Lock()
	s.loadLocked()
	value, ok := s.values[key]
	s.mu.Unlock()
	return value, ok
}

// WriteSetting stores key=value and flushes the settings file.
func (s *Settings) WriteSetting(key, value string) {
	s.mu.Lock()
	s.loadLocked()
	s.values[key] = value
	data, err := json.MarshalIndent(s.values, "", "  ")
	s.mu.Unlock()

	if err != nil {
		log.Printf("[STORAGE] Failed to encode settings: %v", err)
		return
	}
	if err := WriteDataFile(settingsFileName, data, 0o644); err != nil {
		log.Printf("[STORAGE] Failed to write settings: %v", err)
	}
}
