// Package server exposes the prompt builder over the Model Context Protocol:
// two tools (build_dad_joke_prompt, list_joke_styles) and one invocable
// prompt template (dad_joke) that shares the build tool's semantics.
package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/bdurrett/joke-poc-mcp-server/internal/prompt"
	"github.com/bdurrett/joke-poc-mcp-server/internal/util"
)

const (
	serverName    = "dad-joke-mcp-server"
	serverVersion = "1.0.0"

	promptName    = "dad_joke"
	buildToolName = "build_dad_joke_prompt"
	listToolName  = "list_joke_styles"
)

// Config controls the per-call log records the server emits.
type Config struct {
	LogRequests  bool
	LogResponses bool
}

// Server wires the prompt builder into an MCP server. It holds no mutable
// state; handlers may run concurrently.
type Server struct {
	builder *prompt.Builder
	logger  *zap.Logger
	cfg     Config
	mcp     *mcp.Server
}

func New(builder *prompt.Builder, logger *zap.Logger, cfg Config) *Server {
	s := &Server{
		builder: builder,
		logger:  logger,
		cfg:     cfg,
	}

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	mcp.AddTool(srv, s.buildToolDef(), s.handleBuildTool)
	mcp.AddTool(srv, s.listToolDef(), s.handleListTool)
	srv.AddPrompt(s.promptDef(), s.handleGetPrompt)

	s.mcp = srv
	return s
}

type buildArgs struct {
	Topic string `json:"topic"`
	Style string `json:"style,omitempty"`
}

type buildResult struct {
	Prompt         string `json:"prompt"`
	Topic          string `json:"topic"`
	Style          string `json:"style"`
	RequestedStyle string `json:"requested_style,omitempty"`
	Fallback       bool   `json:"fallback"`
	Length         int    `json:"length"`
}

type listArgs struct{}

type styleEntry struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

type listResult struct {
	Styles []styleEntry `json:"styles"`
}

func (s *Server) buildToolDef() *mcp.Tool {
	return &mcp.Tool{
		Name:        buildToolName,
		Description: "Build a dad joke writing instruction about any topic. Supports multiple joke styles.",
		InputSchema: &jsonschema.Schema{
			Type:     "object",
			Required: []string{"topic"},
			Properties: map[string]*jsonschema.Schema{
				"topic": {
					Type:        "string",
					Description: "The topic or subject for the dad joke",
				},
				"style": {
					Type:        "string",
					Description: s.styleArgDescription(),
				},
			},
		},
	}
}

func (s *Server) listToolDef() *mcp.Tool {
	return &mcp.Tool{
		Name:        listToolName,
		Description: "List the available dad joke styles with their descriptions.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
		},
	}
}

func (s *Server) promptDef() *mcp.Prompt {
	return &mcp.Prompt{
		Name:        promptName,
		Description: "Generate a dad joke prompt about any topic. Supports multiple joke styles.",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "topic",
				Description: "The topic or subject for the dad joke",
				Required:    true,
			},
			{
				Name:        "style",
				Description: s.styleArgDescription(),
			},
		},
	}
}

func (s *Server) styleArgDescription() string {
	options := s.builder.ListStyles()
	ids := make([]string, len(options))
	for i, opt := range options {
		ids[i] = opt.ID
	}
	return fmt.Sprintf("The style of dad joke. Options: %s. Default: %s",
		strings.Join(ids, ", "), prompt.DefaultStyle)
}

func (s *Server) handleBuildTool(ctx context.Context, req *mcp.CallToolRequest, args buildArgs) (*mcp.CallToolResult, buildResult, error) {
	requestID := uuid.NewString()
	s.logRequest(requestID, buildToolName,
		zap.String("topic", util.TruncateString(args.Topic, 120)),
		zap.String("requested_style", args.Style),
	)

	res, err := s.builder.Build(args.Topic, args.Style)
	if err != nil {
		s.logger.Error("Rejected prompt build request",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, buildResult{}, err
	}

	s.observeResolution(requestID, res)

	out := buildResult{
		Prompt:         res.Text,
		Topic:          res.Topic,
		Style:          res.Style,
		RequestedStyle: res.RequestedStyle,
		Fallback:       res.Fallback,
		Length:         res.Length,
	}
	s.logResponse(requestID, buildToolName,
		zap.String("style", res.Style),
		zap.Int("prompt_length", res.Length),
	)

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: res.Text},
		},
	}, out, nil
}

func (s *Server) handleListTool(ctx context.Context, req *mcp.CallToolRequest, args listArgs) (*mcp.CallToolResult, listResult, error) {
	requestID := uuid.NewString()
	s.logRequest(requestID, listToolName)

	options := s.builder.ListStyles()
	out := listResult{Styles: make([]styleEntry, len(options))}
	lines := make([]string, len(options))
	for i, opt := range options {
		out.Styles[i] = styleEntry{ID: opt.ID, Description: opt.Description}
		lines[i] = fmt.Sprintf("%s: %s", opt.ID, opt.Description)
	}

	s.logResponse(requestID, listToolName, zap.Int("style_count", len(options)))

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: strings.Join(lines, "\n")},
		},
	}, out, nil
}

func (s *Server) handleGetPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	requestID := uuid.NewString()

	topic := req.Params.Arguments["topic"]
	style := req.Params.Arguments["style"]
	s.logRequest(requestID, "get_prompt",
		zap.String("prompt_name", req.Params.Name),
		zap.String("topic", util.TruncateString(topic, 120)),
		zap.String("requested_style", style),
	)

	res, err := s.builder.Build(topic, style)
	if err != nil {
		s.logger.Error("Rejected get_prompt request",
			zap.String("request_id", requestID),
			zap.String("prompt_name", req.Params.Name),
			zap.Error(err),
		)
		return nil, err
	}

	s.observeResolution(requestID, res)
	s.logResponse(requestID, "get_prompt",
		zap.String("style", res.Style),
		zap.Int("prompt_length", res.Length),
	)

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Dad joke prompt about %s in %s style", res.Topic, res.Style),
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: res.Text},
			},
		},
	}, nil
}

// observeResolution emits the per-call resolution record, with a warning when
// an unknown style was substituted.
func (s *Server) observeResolution(requestID string, res *prompt.Result) {
	if res.Fallback {
		s.logger.Warn("Unknown joke style, falling back to default",
			zap.String("request_id", requestID),
			zap.String("requested_style", res.RequestedStyle),
			zap.String("style", res.Style),
		)
	}
	s.logger.Info("Generated dad joke prompt",
		zap.String("request_id", requestID),
		zap.String("topic", util.TruncateString(res.Topic, 120)),
		zap.String("style", res.Style),
		zap.Int("prompt_length", res.Length),
	)
}

func (s *Server) logRequest(requestID, operation string, fields ...zap.Field) {
	if !s.cfg.LogRequests {
		return
	}
	fields = append([]zap.Field{
		zap.String("request_id", requestID),
		zap.String("request_type", operation),
	}, fields...)
	s.logger.Info("Incoming MCP request", fields...)
}

func (s *Server) logResponse(requestID, operation string, fields ...zap.Field) {
	if !s.cfg.LogResponses {
		return
	}
	fields = append([]zap.Field{
		zap.String("request_id", requestID),
		zap.String("request_type", operation),
	}, fields...)
	s.logger.Info("Outgoing MCP response", fields...)
}
