package settings

// ThemePreset is a named color scheme. CSSVars maps custom property names to
// values the client applies verbatim.
type ThemePreset struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	CSSVars map[string]string `json:"cssVars"`
}

// DefaultPresetID is the preset applied when none is stored.
const DefaultPresetID = "default"

var themePresets = []ThemePreset{
	{
		ID:   "default",
		Name: "KöprüMezun Core",
		CSSVars: map[string]string{
			"--primary":    "222 67% 45%",
			"--secondary":  "210 40% 96%",
			"--accent":     "32 95% 55%",
			"--background": "0 0% 100%",
			"--radius":     "0.75rem",
		},
	},
	{
		ID:   "anadolu",
		Name: "Anadolu",
		CSSVars: map[string]string{
			"--primary":    "18 76% 42%",
			"--secondary":  "36 45% 92%",
			"--accent":     "84 35% 40%",
			"--background": "40 33% 98%",
			"--radius":     "0.5rem",
		},
	},
	{
		ID:   "bosphorus",
		Name: "Boğaziçi",
		CSSVars: map[string]string{
			"--primary":    "202 80% 38%",
			"--secondary":  "200 60% 94%",
			"--accent":     "174 62% 42%",
			"--background": "204 45% 98%",
			"--radius":     "1rem",
		},
	},
	{
		ID:   "kapadokya",
		Name: "Kapadokya",
		CSSVars: map[string]string{
			"--primary":    "268 55% 46%",
			"--secondary":  "280 35% 94%",
			"--accent":     "16 88% 60%",
			"--background": "270 30% 99%",
			"--radius":     "0.75rem",
		},
	},
}

// Presets returns the catalog of available theme presets.
func Presets() []ThemePreset {
	out := make([]ThemePreset, len(themePresets))
	copy(out, themePresets)
	return out
}

// PresetByID resolves a preset, falling back to the default when the id is
// unknown.
func PresetByID(id string) ThemePreset {
	for _, preset := range themePresets {
		if preset.ID == id {
			return preset
		}
	}
	return themePresets[0]
}
