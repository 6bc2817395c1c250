package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/3-14mpa/AITO/internal/application"
	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

const serverName = "aito"

type MeetingStarter interface {
	StartMeeting(ctx context.Context, cmd application.StartMeetingCommand) (*application.MeetingHandle, error)
}

type Reflector interface {
	Run(ctx context.Context, cmd application.ReflectCommand) (application.ReflectionReport, error)
}

type MemorySearch interface {
	Search(ctx context.Context, query string) (string, error)
}

type Config struct {
	Version          string
	SessionID        string
	ReflectionTarget domain.PersonaID
}

type Option func(*Server)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Server exposes meetings, reflection and memory search as MCP tools.
// Meetings outlive the tool call that started them, so they run on the
// server's base context rather than the request's.
type Server struct {
	base      context.Context
	cfg       Config
	meetings  MeetingStarter
	reflector Reflector
	memory    MemorySearch
	logger    *zap.Logger
	mcp       *server.MCPServer
}

type StartMeetingArgs struct {
	Task         string   `json:"task" jsonschema:"required,description=Task the personas should discuss"`
	Participants []string `json:"participants,omitempty" jsonschema:"description=Persona ids in speaking order; defaults to the configured team"`
	Wait         bool     `json:"wait,omitempty" jsonschema:"description=Block until the meeting ends and return the minutes"`
}

type RunReflectionArgs struct {
	Persona string `json:"persona,omitempty" jsonschema:"description=Persona whose day is audited"`
	DaysAgo int    `json:"days_ago,omitempty" jsonschema:"description=0 for today, 1 for yesterday"`
}

type SearchMemoryArgs struct {
	Query string `json:"query" jsonschema:"required,description=Keywords to look for in earlier conversations"`
}

func New(base context.Context, cfg Config, meetings MeetingStarter, reflector Reflector, memory MemorySearch, opts ...Option) *Server {
	if cfg.ReflectionTarget == "" {
		cfg.ReflectionTarget = "ATOM1"
	}

	s := &Server{
		base:      base,
		cfg:       cfg,
		meetings:  meetings,
		reflector: reflector,
		memory:    memory,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mcp = server.NewMCPServer(
		serverName,
		cfg.Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("start_meeting",
		mcp.WithDescription("Start a moderated meeting of the AITO personas on a task. The personas speak in turn; set wait to receive the minutes."),
		mcp.WithInputSchema[StartMeetingArgs](),
	), s.handleStartMeeting)

	s.mcp.AddTool(mcp.NewTool("run_reflection",
		mcp.WithDescription("Run the self-reflection audit over one day of a persona's conversations and return the report as JSON."),
		mcp.WithInputSchema[RunReflectionArgs](),
	), s.handleRunReflection)

	s.mcp.AddTool(mcp.NewTool(application.MemorySearchToolName,
		mcp.WithDescription("Search the shared conversation memory and return the most relevant conversation."),
		mcp.WithInputSchema[SearchMemoryArgs](),
	), s.handleSearchMemory)
}

func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) handleStartMeeting(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args StartMeetingArgs
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if strings.TrimSpace(args.Task) == "" {
		return mcp.NewToolResultError("task is required"), nil
	}

	participants := make([]domain.PersonaID, 0, len(args.Participants))
	for _, id := range args.Participants {
		participants = append(participants, domain.PersonaID(strings.TrimSpace(id)))
	}

	handle, err := s.meetings.StartMeeting(s.base, application.StartMeetingCommand{
		SessionID:    s.cfg.SessionID,
		Task:         args.Task,
		Participants: participants,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("start meeting: %v", err)), nil
	}

	s.logger.Info("meeting started over mcp", zap.String("meeting_id", handle.ID))
	if !args.Wait {
		return mcp.NewToolResultText(fmt.Sprintf("Meeting %s started.", handle.ID)), nil
	}

	result, err := handle.Wait(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("meeting %s: %v", handle.ID, err)), nil
	}
	return mcp.NewToolResultText(minutes(result)), nil
}

func minutes(result application.MeetingResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Meeting %s on %q (%d turns)\n\n", result.MeetingID, result.Task, result.Turns)
	for _, msg := range result.Messages {
		fmt.Fprintf(&b, "%s: %s\n", msg.Speaker, msg.Content)
	}
	return b.String()
}

func (s *Server) handleRunReflection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args RunReflectionArgs
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	persona := domain.PersonaID(strings.TrimSpace(args.Persona))
	if persona == "" {
		persona = s.cfg.ReflectionTarget
	}

	report, err := s.reflector.Run(ctx, application.ReflectCommand{
		PersonaID: persona,
		SessionID: s.cfg.SessionID,
		DaysAgo:   args.DaysAgo,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("run reflection: %v", err)), nil
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode report: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleSearchMemory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args SearchMemoryArgs
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if strings.TrimSpace(args.Query) == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	text, err := s.memory.Search(ctx, args.Query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search memory: %v", err)), nil
	}
	return mcp.NewToolResultText(text), nil
}
