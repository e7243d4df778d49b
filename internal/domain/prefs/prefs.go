// Package prefs stores small UI preferences in the same key-value store
// as the record collections. Values are raw strings, not JSON envelopes.
package prefs

import (
	"context"
	"sync"

	"github.com/clinichq/hms/internal/domain/record"
	"github.com/clinichq/hms/internal/platform/store"
)

// Theme is the UI color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// ThemeKey is the store key the theme preference is persisted under.
const ThemeKey = "theme"

type Service struct {
	mu    sync.RWMutex
	store store.Store
	theme Theme
}

// NewService loads the stored theme, defaulting to light when the key is
// absent or holds an unknown value.
func NewService(ctx context.Context, st store.Store) (*Service, error) {
	s := &Service{store: st, theme: ThemeLight}
	raw, ok, err := st.Load(ctx, ThemeKey)
	if err != nil {
		return s, &record.PersistenceError{Key: ThemeKey, Err: err}
	}
	if ok && Theme(raw).Valid() {
		s.theme = Theme(raw)
	}
	return s, nil
}

func (s *Service) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetTheme validates and stores the preference. A persistence failure
// leaves the in-memory value set and is reported as a
// *record.PersistenceError.
func (s *Service) SetTheme(ctx context.Context, t Theme) error {
	if !t.Valid() {
		return &record.ValidationError{Field: "theme"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = t
	if err := s.store.Save(ctx, ThemeKey, []byte(t)); err != nil {
		return &record.PersistenceError{Key: ThemeKey, Err: err}
	}
	return nil
}
