package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	configDirName  = ".aito"
	configFileName = "config"
	configFileType = "toml"
	envPrefix      = "AITO"
)

const (
	KeySessionID         = "session.id"
	KeyUserID            = "user.id"
	KeyHistoryPath       = "history.path"
	KeyPersonasPath      = "personas.path"
	KeyConstitutionPath  = "constitution.path"
	KeySecretsDir        = "secrets.dir"
	KeyParticipants      = "meeting.participants"
	KeyMaxRounds         = "meeting.max_rounds"
	KeyMaxToolIterations = "meeting.max_tool_iterations"
	KeyReflectionPersona = "reflection.persona"
	KeyGeminiBackend     = "gemini.backend"
	KeyGeminiProject     = "gemini.project"
	KeyGeminiLocation    = "gemini.location"
	KeyGeminiTimeout     = "gemini.timeout"
	KeyGeminiAPIKeyRef   = "gemini.api_key_ref"
	KeyGeminiBaseURL     = "gemini.base_url"
	KeyModelFactual      = "models.factual"
	KeyModelThematic     = "models.thematic"
	KeyModelInsight      = "models.insight"
	KeyModelArbiter      = "models.arbiter"
	KeyModelJudge        = "models.judge"
	KeyLogLevel          = "log.level"
)

const (
	defaultProModel      = "gemini-2.5-pro"
	defaultFlashModel    = "gemini-2.5-flash"
	defaultGeminiTimeout = 120 * time.Second
	defaultGeminiKeyRef  = "aito/gemini/api_key"
	defaultSessionID     = "aito_shared_log"
	defaultUserID        = "user"
)

type MeetingConfig struct {
	Participants      []domain.PersonaID
	MaxRounds         int
	MaxToolIterations int
}

type GeminiConfig struct {
	Backend   string
	Project   string
	Location  string
	APIKeyRef string
	Timeout   time.Duration
	BaseURL   string
}

type ModelConfig struct {
	Factual  string
	Thematic string
	Insight  string
	Arbiter  string
	Judge    string
}

type Config struct {
	Dir               string
	SessionID         string
	UserID            domain.PersonaID
	HistoryPath       string
	PersonasPath      string
	ConstitutionPath  string
	SecretsDir        string
	Meeting           MeetingConfig
	ReflectionPersona domain.PersonaID
	Gemini            GeminiConfig
	Models            ModelConfig
	LogLevel          zapcore.Level
}

// New returns a viper instance with every default set, reading
// <home>/.aito/config.toml and AITO_* environment overrides.
func New(home string) *viper.Viper {
	dir := filepath.Join(home, configDirName)

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeySessionID, defaultSessionID)
	v.SetDefault(KeyUserID, defaultUserID)
	v.SetDefault(KeyHistoryPath, filepath.Join(dir, "aito_chat_history.db"))
	v.SetDefault(KeyPersonasPath, filepath.Join(dir, "personas.toml"))
	v.SetDefault(KeyConstitutionPath, filepath.Join(dir, "constitution.yaml"))
	v.SetDefault(KeySecretsDir, filepath.Join(dir, "secrets"))
	v.SetDefault(KeyParticipants, []string{"ATOM1", "ATOM5"})
	v.SetDefault(KeyMaxRounds, domain.DefaultMaxRounds)
	v.SetDefault(KeyMaxToolIterations, 3)
	v.SetDefault(KeyReflectionPersona, "ATOM1")
	v.SetDefault(KeyGeminiBackend, "gemini")
	v.SetDefault(KeyGeminiTimeout, defaultGeminiTimeout)
	v.SetDefault(KeyGeminiAPIKeyRef, defaultGeminiKeyRef)
	v.SetDefault(KeyModelFactual, defaultProModel)
	v.SetDefault(KeyModelThematic, defaultFlashModel)
	v.SetDefault(KeyModelInsight, defaultProModel)
	v.SetDefault(KeyModelArbiter, defaultProModel)
	v.SetDefault(KeyModelJudge, defaultFlashModel)
	v.SetDefault(KeyLogLevel, "info")

	return v
}

// Load reads the config file, if any, and returns the validated settings.
// Paths are expanded and written back so adapters reading v see them too.
func Load(v *viper.Viper, home string) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	level, err := zapcore.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("%w: log.level: %w", domain.ErrConfiguration, err)
	}

	cfg := Config{
		Dir:               filepath.Join(home, configDirName),
		SessionID:         strings.TrimSpace(v.GetString(KeySessionID)),
		UserID:            domain.PersonaID(strings.TrimSpace(v.GetString(KeyUserID))),
		ReflectionPersona: domain.PersonaID(strings.TrimSpace(v.GetString(KeyReflectionPersona))),
		Meeting: MeetingConfig{
			MaxRounds:         v.GetInt(KeyMaxRounds),
			MaxToolIterations: v.GetInt(KeyMaxToolIterations),
		},
		Gemini: GeminiConfig{
			Backend:   strings.ToLower(strings.TrimSpace(v.GetString(KeyGeminiBackend))),
			Project:   v.GetString(KeyGeminiProject),
			Location:  v.GetString(KeyGeminiLocation),
			APIKeyRef: v.GetString(KeyGeminiAPIKeyRef),
			Timeout:   v.GetDuration(KeyGeminiTimeout),
			BaseURL:   strings.TrimSpace(v.GetString(KeyGeminiBaseURL)),
		},
		Models: ModelConfig{
			Factual:  v.GetString(KeyModelFactual),
			Thematic: v.GetString(KeyModelThematic),
			Insight:  v.GetString(KeyModelInsight),
			Arbiter:  v.GetString(KeyModelArbiter),
			Judge:    v.GetString(KeyModelJudge),
		},
		LogLevel: level,
	}
	for _, id := range v.GetStringSlice(KeyParticipants) {
		if id = strings.TrimSpace(id); id != "" {
			cfg.Meeting.Participants = append(cfg.Meeting.Participants, domain.PersonaID(id))
		}
	}

	for key, target := range map[string]*string{
		KeyHistoryPath:      &cfg.HistoryPath,
		KeyPersonasPath:     &cfg.PersonasPath,
		KeyConstitutionPath: &cfg.ConstitutionPath,
		KeySecretsDir:       &cfg.SecretsDir,
	} {
		*target = expandHome(v.GetString(key), home)
		v.Set(key, *target)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	if c.SessionID == "" {
		errs = append(errs, fmt.Errorf("%s is required", KeySessionID))
	}
	if c.Meeting.MaxRounds < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1", KeyMaxRounds))
	}
	if c.Meeting.MaxToolIterations < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1", KeyMaxToolIterations))
	}
	switch c.Gemini.Backend {
	case "gemini", "vertex":
	default:
		errs = append(errs, fmt.Errorf("%s must be gemini or vertex, got %q", KeyGeminiBackend, c.Gemini.Backend))
	}
	if c.Gemini.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyGeminiTimeout))
	}
	for key, model := range map[string]string{
		KeyModelFactual:  c.Models.Factual,
		KeyModelThematic: c.Models.Thematic,
		KeyModelInsight:  c.Models.Insight,
		KeyModelArbiter:  c.Models.Arbiter,
		KeyModelJudge:    c.Models.Judge,
	} {
		if strings.TrimSpace(model) == "" {
			errs = append(errs, fmt.Errorf("%s is required", key))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrConfiguration, errors.Join(errs...))
	}
	return nil
}

func expandHome(path string, home string) string {
	path = strings.TrimSpace(path)
	switch {
	case path == "~":
		return home
	case strings.HasPrefix(path, "~"+string(os.PathSeparator)):
		return filepath.Join(home, path[2:])
	default:
		return path
	}
}
