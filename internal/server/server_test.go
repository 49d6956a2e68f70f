package server

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/bdurrett/joke-poc-mcp-server/internal/prompt"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	catalog, err := prompt.NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	builder := prompt.NewBuilder(catalog)
	return New(builder, zap.NewNop(), Config{LogRequests: true, LogResponses: true})
}

func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) == 0 {
		t.Fatal("expected non-empty tool result content")
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestBuildToolReturnsPromptAndMetadata(t *testing.T) {
	s := newTestServer(t)

	result, out, err := s.handleBuildTool(context.Background(), &mcp.CallToolRequest{}, buildArgs{
		Topic: "fish",
		Style: "pun",
	})
	if err != nil {
		t.Fatalf("handleBuildTool: %v", err)
	}

	text := textContent(t, result)
	if text != out.Prompt {
		t.Error("tool text content and structured prompt differ")
	}
	if out.Style != "pun" || out.Topic != "fish" || out.Fallback {
		t.Errorf("unexpected metadata: %+v", out)
	}
	if out.Length != len(out.Prompt) {
		t.Errorf("length metadata %d does not match prompt length %d", out.Length, len(out.Prompt))
	}
}

func TestBuildToolEmptyTopic(t *testing.T) {
	s := newTestServer(t)

	_, _, err := s.handleBuildTool(context.Background(), &mcp.CallToolRequest{}, buildArgs{
		Topic: "   ",
		Style: "pun",
	})
	if err == nil {
		t.Fatal("expected error for empty topic")
	}
}

func TestBuildToolUnknownStyleFallsBack(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleBuildTool(context.Background(), &mcp.CallToolRequest{}, buildArgs{
		Topic: "cats",
		Style: "limerick",
	})
	if err != nil {
		t.Fatalf("unknown style must not fail: %v", err)
	}
	if out.Style != prompt.DefaultStyle || !out.Fallback {
		t.Errorf("expected fallback to %q, got %+v", prompt.DefaultStyle, out)
	}
	if out.RequestedStyle != "limerick" {
		t.Errorf("requested style not preserved: %+v", out)
	}
}

func TestListToolReturnsAllStyles(t *testing.T) {
	s := newTestServer(t)

	result, out, err := s.handleListTool(context.Background(), &mcp.CallToolRequest{}, listArgs{})
	if err != nil {
		t.Fatalf("handleListTool: %v", err)
	}
	if len(out.Styles) != 8 {
		t.Fatalf("expected 8 styles, got %d", len(out.Styles))
	}

	seen := make(map[string]bool)
	for _, entry := range out.Styles {
		if seen[entry.ID] {
			t.Errorf("duplicate style %q", entry.ID)
		}
		seen[entry.ID] = true
	}
	for _, id := range []string{"pun", "wordplay", "observational", "anti-humor", "question-answer", "one-liner", "knock-knock", "classic"} {
		if !seen[id] {
			t.Errorf("missing style %q", id)
		}
	}

	if textContent(t, result) == "" {
		t.Error("list tool should render a text summary")
	}
}

func TestGetPromptMatchesBuildTool(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleBuildTool(context.Background(), &mcp.CallToolRequest{}, buildArgs{
		Topic: "coffee",
		Style: "one-liner",
	})
	if err != nil {
		t.Fatalf("handleBuildTool: %v", err)
	}

	promptResult, err := s.handleGetPrompt(context.Background(), &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{
			Name: promptName,
			Arguments: map[string]string{
				"topic": "coffee",
				"style": "one-liner",
			},
		},
	})
	if err != nil {
		t.Fatalf("handleGetPrompt: %v", err)
	}
	if len(promptResult.Messages) != 1 {
		t.Fatalf("expected one message, got %d", len(promptResult.Messages))
	}

	msg := promptResult.Messages[0]
	if msg.Role != "user" {
		t.Errorf("expected user role, got %q", msg.Role)
	}
	text, ok := msg.Content.(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", msg.Content)
	}
	if text.Text != out.Prompt {
		t.Error("prompt template and build tool must produce identical text for the same inputs")
	}
}

func TestGetPromptMissingTopic(t *testing.T) {
	s := newTestServer(t)

	_, err := s.handleGetPrompt(context.Background(), &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{
			Name:      promptName,
			Arguments: map[string]string{"style": "pun"},
		},
	})
	if err == nil {
		t.Fatal("expected error when topic argument is missing")
	}
}
