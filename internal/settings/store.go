// Package settings holds the viewer's client preferences: language, theme
// mode, theme preset and onboarding progress. Unlike the demo state, the
// whole settings document is persisted, unwrapped, so older clients keep
// reading it after schema additions.
package settings

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/koprumezun/mezunhub/internal/storage"
)

// SettingsKey is the storage key preferences are persisted under.
const SettingsKey = "koprumezun.settings"

// Language is the UI language.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageTurkish Language = "tr"
)

// ThemeMode selects light, dark, or the system preference.
type ThemeMode string

const (
	ModeLight  ThemeMode = "light"
	ModeDark   ThemeMode = "dark"
	ModeSystem ThemeMode = "system"
)

// State is the persisted preference document.
type State struct {
	Language           Language  `json:"language"`
	ThemeMode          ThemeMode `json:"themeMode"`
	ThemePresetID      string    `json:"themePresetId"`
	OnboardingComplete bool      `json:"onboardingComplete"`
}

func defaultState() State {
	return State{
		Language:      LanguageEnglish,
		ThemeMode:     ModeSystem,
		ThemePresetID: DefaultPresetID,
	}
}

// ThemeApplier receives the effective preset and mode whenever either
// changes, including once on restore.
type ThemeApplier interface {
	ApplyTheme(preset ThemePreset, mode ThemeMode)
}

// Store guards the preference document and persists every change.
type Store struct {
	mu      sync.RWMutex
	state   State
	kv      storage.KV
	applier ThemeApplier
	logger  zerolog.Logger
}

// NewStore restores persisted preferences (falling back to defaults) and
// applies the restored theme once.
func NewStore(ctx context.Context, kv storage.KV, applier ThemeApplier, logger zerolog.Logger) *Store {
	s := &Store{
		state:   defaultState(),
		kv:      kv,
		applier: applier,
		logger:  logger,
	}
	if raw, err := kv.Get(ctx, SettingsKey); err == nil {
		restored := defaultState()
		if err := json.Unmarshal(raw, &restored); err != nil {
			logger.Warn().Err(err).Msg("Discarding corrupt settings document")
		} else {
			s.state = restored
		}
	}
	if applier != nil {
		applier.ApplyTheme(PresetByID(s.state.ThemePresetID), s.state.ThemeMode)
	}
	return s
}

// State returns a copy of the current preferences.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Patch carries the updatable fields; nil pointers are left untouched.
type Patch struct {
	Language           *Language
	ThemeMode          *ThemeMode
	ThemePresetID      *string
	OnboardingComplete *bool
}

// Update applies the patch, persists the result, and re-applies the theme
// when the mode or preset moved.
func (s *Store) Update(ctx context.Context, patch Patch) State {
	s.mu.Lock()
	themeChanged := false
	if patch.Language != nil {
		s.state.Language = *patch.Language
	}
	if patch.ThemeMode != nil && s.state.ThemeMode != *patch.ThemeMode {
		s.state.ThemeMode = *patch.ThemeMode
		themeChanged = true
	}
	if patch.ThemePresetID != nil && s.state.ThemePresetID != *patch.ThemePresetID {
		s.state.ThemePresetID = *patch.ThemePresetID
		themeChanged = true
	}
	if patch.OnboardingComplete != nil {
		s.state.OnboardingComplete = *patch.OnboardingComplete
	}
	state := s.state
	s.mu.Unlock()

	s.persist(ctx, state)
	if themeChanged && s.applier != nil {
		s.applier.ApplyTheme(PresetByID(state.ThemePresetID), state.ThemeMode)
	}
	return state
}

// Reset restores defaults, persists them, and re-applies the default theme.
func (s *Store) Reset(ctx context.Context) State {
	s.mu.Lock()
	s.state = defaultState()
	state := s.state
	s.mu.Unlock()

	s.persist(ctx, state)
	if s.applier != nil {
		s.applier.ApplyTheme(PresetByID(state.ThemePresetID), state.ThemeMode)
	}
	return state
}

func (s *Store) persist(ctx context.Context, state State) {
	raw, err := json.Marshal(state)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode settings")
		return
	}
	if err := s.kv.Set(ctx, SettingsKey, raw); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist settings")
	}
}
