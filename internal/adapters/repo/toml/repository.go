package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/3-14mpa/AITO/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	personasPathKey    = "personas.path"
	personasFileMode   = 0o600
	personasDirMode    = 0o700
	personasConfigDir  = ".aito"
	personasConfigFile = "personas.toml"
	tempFilePattern    = ".personas-*.toml.tmp"
)

var ErrPersonasFileExists = errors.New("personas file already exists")

// Repository reads and writes the persona file. Load returns an immutable
// Catalog; the file is not consulted again afterwards.
type Repository struct {
	personasPath string
	mu           *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	personasPath := cfg.GetString(personasPathKey)
	if personasPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		personasPath = filepath.Join(homeDir, personasConfigDir, personasConfigFile)
	}

	personasPath, err := normalizePersonasPath(personasPath)
	if err != nil {
		return nil, err
	}

	return &Repository{personasPath: personasPath, mu: lockForPath(personasPath)}, nil
}

func (r *Repository) Path() string {
	return r.personasPath
}

func (r *Repository) Load(ctx context.Context) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	return newCatalog(file)
}

// Init writes the default team and prompts. An existing file is kept unless
// overwrite is set.
func (r *Repository) Init(ctx context.Context, overwrite bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !overwrite {
		if _, err := os.Stat(r.personasPath); err == nil {
			return fmt.Errorf("%w: %s", ErrPersonasFileExists, r.personasPath)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat personas file: %w", err)
		}
	}

	prompts := domain.DefaultPromptSet()
	file := fileSchema{
		Prompts: promptsSchema{
			TeamSimulationTemplate: prompts.TeamSimulationTemplate,
			GroundingInstructions:  prompts.GroundingInstructions,
		},
	}
	for _, persona := range DefaultPersonas() {
		file.Personas = append(file.Personas, toSchema(persona))
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.personasPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, fmt.Errorf("%w: personas file %s not found (run `aito init`)", domain.ErrConfiguration, r.personasPath)
		}
		return fileSchema{}, fmt.Errorf("read personas file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode personas file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizePersonasPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve personas path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.personasPath), personasDirMode); err != nil {
		return fmt.Errorf("create personas directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode personas file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.personasPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp personas file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp personas file: %w", err)
	}
	if err := tempFile.Chmod(personasFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp personas file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp personas file: %w", err)
	}
	if err := os.Rename(tempName, r.personasPath); err != nil {
		return fmt.Errorf("replace personas file: %w", err)
	}

	cleanup = false
	return nil
}

func toSchema(persona domain.Persona) personaSchema {
	return personaSchema{
		ID:              string(persona.ID),
		Personality:     persona.Personality,
		Model:           persona.Model,
		MeetingEligible: persona.MeetingEligible,
		Tools:           append([]string(nil), persona.Tools...),
	}
}

func fromSchema(entry personaSchema) domain.Persona {
	return domain.Persona{
		ID:              domain.PersonaID(entry.ID),
		Personality:     entry.Personality,
		Model:           entry.Model,
		MeetingEligible: entry.MeetingEligible,
		Tools:           append([]string(nil), entry.Tools...),
	}
}

// Catalog is the loaded, read-only persona configuration.
type Catalog struct {
	personas map[domain.PersonaID]domain.Persona
	order    []domain.PersonaID
	prompts  domain.PromptSet
}

var _ ports.PersonaRegistry = (*Catalog)(nil)

func newCatalog(file fileSchema) (*Catalog, error) {
	catalog := &Catalog{
		personas: make(map[domain.PersonaID]domain.Persona, len(file.Personas)),
		prompts: domain.PromptSet{
			TeamSimulationTemplate: file.Prompts.TeamSimulationTemplate,
			GroundingInstructions:  file.Prompts.GroundingInstructions,
		},
	}

	var errs []error
	for _, entry := range file.Personas {
		persona := fromSchema(entry)
		if err := persona.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, ok := catalog.personas[persona.ID]; ok {
			errs = append(errs, fmt.Errorf("persona %s defined twice", persona.ID))
			continue
		}
		catalog.personas[persona.ID] = persona
		catalog.order = append(catalog.order, persona.ID)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: invalid personas file: %w", domain.ErrConfiguration, errors.Join(errs...))
	}

	return catalog, nil
}

func (c *Catalog) Persona(ctx context.Context, id domain.PersonaID) (domain.Persona, error) {
	if err := ctx.Err(); err != nil {
		return domain.Persona{}, err
	}

	persona, ok := c.personas[id]
	if !ok {
		return domain.Persona{}, fmt.Errorf("%w: %s", domain.ErrPersonaNotFound, id)
	}
	persona.Tools = append([]string(nil), persona.Tools...)
	return persona, nil
}

func (c *Catalog) List(ctx context.Context) ([]domain.Persona, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	personas := make([]domain.Persona, 0, len(c.order))
	for _, id := range c.order {
		persona := c.personas[id]
		persona.Tools = append([]string(nil), persona.Tools...)
		personas = append(personas, persona)
	}
	return personas, nil
}

func (c *Catalog) Prompts() domain.PromptSet {
	return c.prompts
}
