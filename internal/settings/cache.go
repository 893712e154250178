package settings

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/johnbooks/admin-gateway/internal/domain"
)

// ThemeCache is the one persistent slot of client state: the last-applied
// theme, used to pre-paint the console before the authoritative fetch
// resolves.
type ThemeCache struct {
	path string
	mu   sync.Mutex
}

type cacheRecord struct {
	ThemeMode domain.ThemeMode `json:"themeMode"`
}

func NewThemeCache(path string) *ThemeCache {
	return &ThemeCache{path: path}
}

// Read returns the cached mode; ok is false when the slot is empty or
// unreadable.
func (c *ThemeCache) Read() (domain.ThemeMode, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		return "", false
	}
	var rec cacheRecord
	if err := json.Unmarshal(data, &rec); err != nil || !rec.ThemeMode.Valid() {
		return "", false
	}
	return rec.ThemeMode, true
}

func (c *ThemeCache) Write(mode domain.ThemeMode) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := json.Marshal(cacheRecord{ThemeMode: mode})
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}
