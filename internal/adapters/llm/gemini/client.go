package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/3-14mpa/AITO/internal/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	BackendGemini = "gemini"
	BackendVertex = "vertex"

	DefaultTimeout   = 120 * time.Second
	DefaultAPIKeyRef = "aito/gemini/api_key"
)

var tracer = otel.Tracer("github.com/3-14mpa/AITO/internal/adapters/llm/gemini")

type Config struct {
	Backend   string
	Project   string
	Location  string
	APIKeyRef string
	Timeout   time.Duration
	// BaseURL overrides the service endpoint.
	BaseURL string
}

func (c Config) withDefaults() Config {
	if c.Backend == "" {
		c.Backend = BackendGemini
	}
	if c.APIKeyRef == "" {
		c.APIKeyRef = DefaultAPIKeyRef
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

type Option func(*Client)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client talks to Gemini through the genai SDK. The SDK client is created on
// first use; a failed connection is retried on the next call.
type Client struct {
	cfg     Config
	secrets ports.SecretStore
	logger  *zap.Logger

	mu     sync.Mutex
	client *genai.Client
}

var _ ports.AgentCompleter = (*Client)(nil)

func New(cfg Config, secrets ports.SecretStore, opts ...Option) *Client {
	c := &Client{cfg: cfg.withDefaults(), secrets: secrets, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) connect(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}

	clientCfg, err := c.clientConfig(ctx)
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	c.logger.Debug("gemini client ready", zap.String("backend", c.cfg.Backend))
	c.client = client
	return client, nil
}

func (c *Client) clientConfig(ctx context.Context) (*genai.ClientConfig, error) {
	switch c.cfg.Backend {
	case BackendVertex:
		if c.cfg.Project == "" || c.cfg.Location == "" {
			return nil, fmt.Errorf("%w: vertex backend needs gemini.project and gemini.location", domain.ErrConfiguration)
		}
		return &genai.ClientConfig{
			Backend:     genai.BackendVertexAI,
			Project:     c.cfg.Project,
			Location:    c.cfg.Location,
			HTTPOptions: genai.HTTPOptions{BaseURL: c.cfg.BaseURL},
		}, nil
	case BackendGemini:
		if c.secrets == nil {
			return nil, fmt.Errorf("%w: no secret store for the gemini api key", domain.ErrConfiguration)
		}
		apiKey, err := c.secrets.Get(ctx, c.cfg.APIKeyRef)
		if err != nil {
			if errors.Is(err, domain.ErrSecretNotFound) {
				return nil, fmt.Errorf("%w: gemini api key not set (run `aito auth set-key`): %w", domain.ErrConfiguration, err)
			}
			return nil, fmt.Errorf("load gemini api key: %w", err)
		}
		return &genai.ClientConfig{
			Backend:     genai.BackendGeminiAPI,
			APIKey:      apiKey,
			HTTPOptions: genai.HTTPOptions{BaseURL: c.cfg.BaseURL},
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown gemini backend %q", domain.ErrConfiguration, c.cfg.Backend)
	}
}

func (c *Client) generate(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	ctx, span := tracer.Start(ctx, "gemini.generate_content", trace.WithAttributes(
		attribute.String("model", model),
		attribute.Int("contents", len(contents)),
	))
	defer span.End()

	if strings.TrimSpace(model) == "" {
		err := fmt.Errorf("%w: model is required", domain.ErrConfiguration)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	client, err := c.connect(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	started := time.Now()
	resp, err := client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		err = fmt.Errorf("generate content with %s: %w", model, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	c.logger.Debug("gemini call finished",
		zap.String("model", model),
		zap.Duration("elapsed", time.Since(started)),
	)
	return resp, nil
}

// Complete runs one agent step: the persona's history, plus any tool results
// gathered so far in this turn, with its allowed tools declared.
func (c *Client) Complete(ctx context.Context, req ports.AgentRequest) (ports.AgentResponse, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(req.SystemPrompt),
		Tools:             toGenaiTools(req.Tools),
	}

	resp, err := c.generate(ctx, req.Model, agentContents(req), config)
	if err != nil {
		return ports.AgentResponse{}, err
	}

	return fromResponse(resp), nil
}

// Model binds the client to one model for single-shot generation.
func (c *Client) Model(name string) *Model {
	return &Model{client: c, name: name}
}

type Model struct {
	client *Client
	name   string
}

var (
	_ ports.TextGenerator       = (*Model)(nil)
	_ ports.StructuredGenerator = (*Model)(nil)
)

func (m *Model) Name() string {
	return m.name
}

func (m *Model) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	config := &genai.GenerateContentConfig{SystemInstruction: systemInstruction(systemPrompt)}

	resp, err := m.client.generate(ctx, m.name, userContents(userPrompt), config)
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}

func (m *Model) GenerateStructured(ctx context.Context, systemPrompt, userPrompt string, schema *ports.Schema) ([]byte, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(systemPrompt),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    toGenaiSchema(schema),
	}

	resp, err := m.client.generate(ctx, m.name, userContents(userPrompt), config)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, errors.New("structured response is empty")
	}
	return []byte(text), nil
}
