// Package dialogue maps engine event codes to display text. The engine only
// emits codes; everything the pet actually says lives here, loaded from YAML
// with an embedded default set.
package dialogue

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/platypor/internal/pet"
)

//go:embed defaults/dialogues.yaml
var defaultDialoguesYAML []byte

// Lines holds the line sets per event code. Ambient lines are the idle
// chatter; the rest are reactions to specific outcomes.
type Lines struct {
	Ambient          []string `yaml:"ambient"`
	Death            []string `yaml:"death"`
	GambleWin        []string `yaml:"gamble_win"`
	GambleLose       []string `yaml:"gamble_lose"`
	MinigameWin      []string `yaml:"minigame_win"`
	MinigameLose     []string `yaml:"minigame_lose"`
	LiteracySuccess  []string `yaml:"literacy_success"`
	LiteracyTooEarly []string `yaml:"literacy_too_early"`
}

// Load loads the dialogue lines.
// Search order: customPath -> ~/.platypor/configs/dialogues.yaml -> ./configs/dialogues.yaml -> embedded default
func Load(customPath string) (Lines, error) {
	var lines Lines

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return lines, fmt.Errorf("failed to read dialogues %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &lines); err != nil {
			return lines, fmt.Errorf("failed to parse dialogues %s: %w", customPath, err)
		}
		return lines, nil
	}

	if userCfgPath := userConfigPath("dialogues.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &lines); err == nil {
				return lines, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/dialogues.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &lines); err == nil {
			return lines, nil
		}
	}

	if err := yaml.Unmarshal(defaultDialoguesYAML, &lines); err != nil {
		return lines, fmt.Errorf("failed to parse embedded dialogues: %w", err)
	}
	return lines, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platypor", "configs", filename)
}

// forEvent returns the line set for an event code.
func (l Lines) forEvent(ev pet.Event) []string {
	switch ev {
	case pet.EventAmbient:
		return l.Ambient
	case pet.EventDeath:
		return l.Death
	case pet.EventGambleWin:
		return l.GambleWin
	case pet.EventGambleLose:
		return l.GambleLose
	case pet.EventMinigameWin:
		return l.MinigameWin
	case pet.EventMinigameLose:
		return l.MinigameLose
	case pet.EventLiteracySuccess:
		return l.LiteracySuccess
	case pet.EventLiteracyTooEarly:
		return l.LiteracyTooEarly
	}
	return nil
}

// Pick selects a random line for the event, or "" when the event has no
// lines (EventNone included).
func (l Lines) Pick(rng pet.Rand, ev pet.Event) string {
	set := l.forEvent(ev)
	if len(set) == 0 {
		return ""
	}
	return set[rng.Intn(len(set))]
}
