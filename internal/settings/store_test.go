package settings

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koprumezun/mezunhub/internal/storage"
)

type appliedTheme struct {
	preset ThemePreset
	mode   ThemeMode
}

type recordingApplier struct {
	applied []appliedTheme
}

func (a *recordingApplier) ApplyTheme(preset ThemePreset, mode ThemeMode) {
	a.applied = append(a.applied, appliedTheme{preset: preset, mode: mode})
}

func newSettingsStore(kv storage.KV, applier ThemeApplier) *Store {
	return NewStore(context.Background(), kv, applier, zerolog.Nop())
}

func TestNewStoreDefaults(t *testing.T) {
	applier := &recordingApplier{}
	store := newSettingsStore(storage.NewMemoryKV(), applier)

	state := store.State()
	assert.Equal(t, LanguageEnglish, state.Language)
	assert.Equal(t, ModeSystem, state.ThemeMode)
	assert.Equal(t, DefaultPresetID, state.ThemePresetID)
	assert.False(t, state.OnboardingComplete)

	// The restored theme is applied exactly once on construction.
	require.Len(t, applier.applied, 1)
	assert.Equal(t, DefaultPresetID, applier.applied[0].preset.ID)
	assert.Equal(t, ModeSystem, applier.applied[0].mode)
}

func TestNewStoreRestoresPersistedDocument(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, SettingsKey, []byte(`{"language":"tr","themeMode":"dark","themePresetId":"bosphorus","onboardingComplete":true}`)))

	applier := &recordingApplier{}
	store := newSettingsStore(kv, applier)

	state := store.State()
	assert.Equal(t, LanguageTurkish, state.Language)
	assert.Equal(t, ModeDark, state.ThemeMode)
	assert.Equal(t, "bosphorus", state.ThemePresetID)
	assert.True(t, state.OnboardingComplete)

	require.Len(t, applier.applied, 1)
	assert.Equal(t, "bosphorus", applier.applied[0].preset.ID)
	assert.Equal(t, ModeDark, applier.applied[0].mode)
}

func TestNewStoreDiscardsCorruptDocument(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, SettingsKey, []byte(`{broken`)))

	store := newSettingsStore(kv, nil)
	assert.Equal(t, defaultState(), store.State())
}

func TestUpdatePersistsUnwrapped(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	store := newSettingsStore(kv, nil)

	lang := LanguageTurkish
	store.Update(ctx, Patch{Language: &lang})

	// The stored document is the bare state, no version envelope.
	raw, err := kv.Get(ctx, SettingsKey)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "tr", doc["language"])
	assert.NotContains(t, doc, "version")
	assert.NotContains(t, doc, "data")
}

func TestUpdateAppliesThemeOnlyWhenItMoves(t *testing.T) {
	ctx := context.Background()
	applier := &recordingApplier{}
	store := newSettingsStore(storage.NewMemoryKV(), applier)
	require.Len(t, applier.applied, 1)

	// Language-only change: theme untouched.
	lang := LanguageTurkish
	store.Update(ctx, Patch{Language: &lang})
	assert.Len(t, applier.applied, 1)

	// Same mode as current: still no re-apply.
	mode := ModeSystem
	store.Update(ctx, Patch{ThemeMode: &mode})
	assert.Len(t, applier.applied, 1)

	mode = ModeDark
	preset := "kapadokya"
	state := store.Update(ctx, Patch{ThemeMode: &mode, ThemePresetID: &preset})
	assert.Equal(t, ModeDark, state.ThemeMode)
	require.Len(t, applier.applied, 2)
	assert.Equal(t, "kapadokya", applier.applied[1].preset.ID)
	assert.Equal(t, ModeDark, applier.applied[1].mode)
}

func TestUpdateSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()

	store := newSettingsStore(kv, nil)
	done := true
	store.Update(ctx, Patch{OnboardingComplete: &done})

	reopened := newSettingsStore(kv, nil)
	assert.True(t, reopened.State().OnboardingComplete)
}

func TestResetRestoresDefaults(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	applier := &recordingApplier{}
	store := newSettingsStore(kv, applier)

	mode := ModeDark
	store.Update(ctx, Patch{ThemeMode: &mode})
	require.Len(t, applier.applied, 2)

	state := store.Reset(ctx)
	assert.Equal(t, defaultState(), state)
	require.Len(t, applier.applied, 3)
	assert.Equal(t, ModeSystem, applier.applied[2].mode)

	reopened := newSettingsStore(kv, nil)
	assert.Equal(t, defaultState(), reopened.State())
}

func TestPresetByIDFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "bosphorus", PresetByID("bosphorus").ID)
	assert.Equal(t, DefaultPresetID, PresetByID("does-not-exist").ID)
	assert.Equal(t, DefaultPresetID, PresetByID("").ID)
}

func TestPresetsCatalog(t *testing.T) {
	presets := Presets()
	require.NotEmpty(t, presets)
	assert.Equal(t, DefaultPresetID, presets[0].ID)
	for _, preset := range presets {
		assert.NotEmpty(t, preset.Name)
		assert.NotEmpty(t, preset.CSSVars)
	}
}
