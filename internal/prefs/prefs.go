// Package prefs handles Marquee's theme preference.
// The value lives in the persisted key/value store under the "theme" key.
package prefs

import (
	"fmt"
	"strings"

	"github.com/five82/marquee/internal/kv"
)

// Theme is the UI color scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// StoreKey is the persisted key holding the theme.
const StoreKey = "theme"

const defaultTheme = Light

// ParseTheme maps a stored value to a Theme, falling back to the default for
// anything unrecognised.
func ParseTheme(value string) Theme {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case Dark:
		return Dark
	case Light:
		return Light
	default:
		return defaultTheme
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Label is the toggle action text: the mode the user would switch to.
func (t Theme) Label() string {
	if t == Dark {
		return "Light Mode"
	}
	return "Dark Mode"
}

// String implements fmt.Stringer.
func (t Theme) String() string {
	return string(t)
}

// LoadTheme reads the theme from store, falling back to light if missing.
func LoadTheme(store kv.Store) Theme {
	if store == nil {
		return defaultTheme
	}
	value, ok, err := store.Get(StoreKey)
	if err != nil || !ok {
		return defaultTheme // Graceful degradation
	}
	return ParseTheme(value)
}

// SaveTheme writes the theme to store.
func SaveTheme(store kv.Store, t Theme) error {
	if store == nil {
		return fmt.Errorf("store is nil")
	}
	if err := store.Set(StoreKey, ParseTheme(string(t)).String()); err != nil {
		return fmt.Errorf("write theme: %w", err)
	}
	return nil
}
