package server

import (
	"encoding/json"
	"testing"
)

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.cache == nil {
		t.Fatal("New() did not initialize cache")
	}
}

func TestMCPRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantID     interface{}
		wantMethod string
	}{
		{
			"string id",
			`{"jsonrpc":"2.0","id":"test-1","method":"tools/list"}`,
			"test-1",
			"tools/list",
		},
		{
			"number id",
			`{"jsonrpc":"2.0","id":42,"method":"ping"}`,
			float64(42), // JSON numbers decode as float64
			"ping",
		},
		{
			"null id",
			`{"jsonrpc":"2.0","id":null,"method":"initialize"}`,
			nil,
			"initialize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req MCPRequest
			if err := json.Unmarshal([]byte(tt.json), &req); err != nil {
				t.Fatalf("Failed to unmarshal: %v", err)
			}

			if req.ID != tt.wantID {
				t.Errorf("ID: got %v (%T), want %v (%T)", req.ID, req.ID, tt.wantID, tt.wantID)
			}
			if req.Method != tt.wantMethod {
				t.Errorf("Method: got %s, want %s", req.Method, tt.wantMethod)
			}
			if req.JSONRPC != "2.0" {
				t.Errorf("JSONRPC: got %s, want 2.0", req.JSONRPC)
			}
		})
	}
}

func TestHandleRequest_Routing(t *testing.T) {
	s := New()

	t.Run("initialize", func(t *testing.T) {
		resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "initialize"})
		if resp == nil || resp.Error != nil {
			t.Fatalf("initialize should succeed, got %+v", resp)
		}
		result, ok := resp.Result.(map[string]interface{})
		if !ok {
			t.Fatalf("unexpected result type %T", resp.Result)
		}
		if result["protocolVersion"] != "2024-11-05" {
			t.Errorf("protocolVersion: got %v", result["protocolVersion"])
		}
	})

	t.Run("notifications/initialized", func(t *testing.T) {
		if resp := s.handleRequest(&MCPRequest{Method: "notifications/initialized"}); resp != nil {
			t.Error("notifications should produce no response")
		}
	})

	t.Run("ping", func(t *testing.T) {
		resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 7, Method: "ping"})
		if resp == nil || resp.Error != nil {
			t.Fatalf("ping should succeed, got %+v", resp)
		}
	})

	t.Run("unknown method", func(t *testing.T) {
		resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 8, Method: "nonsense"})
		if resp == nil || resp.Error == nil {
			t.Fatal("unknown methods should return an error response")
		}
		if resp.Error.Code != -32601 {
			t.Errorf("error code: got %d, want -32601", resp.Error.Code)
		}
	})
}

func TestHandleToolsList(t *testing.T) {
	s := New()
	resp := s.handleToolsList(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"})
	if resp.Error != nil {
		t.Fatalf("tools/list failed: %+v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected result type %T", resp.Result)
	}
	tools, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatalf("unexpected tools type %T", result["tools"])
	}
	if len(tools) == 0 {
		t.Fatal("expected at least one tool")
	}

	seen := make(map[string]bool)
	for _, tool := range tools {
		if tool.Name == "" {
			t.Error("tool with empty name")
		}
		if tool.Description == "" {
			t.Errorf("tool %s has no description", tool.Name)
		}
		if tool.InputSchema == nil {
			t.Errorf("tool %s has no input schema", tool.Name)
		}
		if seen[tool.Name] {
			t.Errorf("duplicate tool name %s", tool.Name)
		}
		seen[tool.Name] = true
	}

	for _, want := range []string{
		"ppm_load", "ppm_create", "ppm_convert",
		"ppm_get_pixel", "ppm_set_pixel",
		"ppm_palette", "ppm_average_color",
		"ppm_filter", "ppm_resize",
	} {
		if !seen[want] {
			t.Errorf("tool %s not listed", want)
		}
	}
}
