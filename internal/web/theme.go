package web

import (
	"sync/atomic"

	"github.com/johnbooks/admin-gateway/internal/domain"
)

// ThemeState is the visual root the settings store repaints. Every rendered
// page reads the mode from here, so a confirmed change is visible on the very
// next response without any store lookup in the render path.
type ThemeState struct {
	mode atomic.Value
}

func NewThemeState() *ThemeState {
	ts := &ThemeState{}
	ts.mode.Store(domain.ThemeDark)
	return ts
}

func (ts *ThemeState) ApplyTheme(mode domain.ThemeMode) {
	ts.mode.Store(mode)
}

func (ts *ThemeState) Mode() domain.ThemeMode {
	return ts.mode.Load().(domain.ThemeMode)
}
