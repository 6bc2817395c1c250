package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Prompts  promptsSchema   `toml:"prompts"`
	Personas []personaSchema `toml:"personas"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported personas schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type promptsSchema struct {
	TeamSimulationTemplate string `toml:"team_simulation_template,multiline"`
	GroundingInstructions  string `toml:"grounding_instructions,multiline"`
}

type personaSchema struct {
	ID              string   `toml:"id"`
	Personality     string   `toml:"personality"`
	Model           string   `toml:"model"`
	MeetingEligible bool     `toml:"meeting_eligible"`
	Tools           []string `toml:"tools,omitempty"`
}
