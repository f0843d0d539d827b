package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
)

// SpecMutator lets modules tweak the parsed spec before it is served
type SpecMutator func(map[string]any)

var (
	mu       sync.Mutex
	mutators []SpecMutator
)

// docReader is a seam so tests can inject invalid JSON
var docReader = func() string { return baseDoc }

// Register adds a spec mutator; modules call it while mounting
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// serveDocJSON serves the spec with servers set to apiBase
func serveDocJSON(apiBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		ensureServers(spec, apiBase)
		ensureSchemas(spec)
		addDefaultError(spec)

		mu.Lock()
		for _, m := range mutators {
			m(spec)
		}
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers pins the document to OAS 3.0.3 and sets servers when absent
func ensureServers(spec map[string]any, url string) {
	if _, ok := spec["swagger"]; ok {
		delete(spec, "swagger")
	}
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

func schemas(spec map[string]any) map[string]any {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	s, ok := comps["schemas"].(map[string]any)
	if !ok {
		s = map[string]any{}
		comps["schemas"] = s
	}
	return s
}

// ensureSchemas adds the two wire bodies when the document lacks them
func ensureSchemas(spec map[string]any) {
	s := schemas(spec)
	if _, ok := s["ErrorResponse"]; !ok {
		s["ErrorResponse"] = map[string]any{
			"type": "object",
			"properties": map[string]any{
				"status_code": map[string]any{"type": "integer"},
				"status":      map[string]any{"type": "string"},
				"code":        map[string]any{"type": "integer"},
				"error":       map[string]any{"type": "string"},
				"request_id":  map[string]any{"type": "string"},
			},
			"required": []any{"status_code", "status"},
		}
	}
	if _, ok := s["WebhookResult"]; !ok {
		s["WebhookResult"] = map[string]any{
			"type": "object",
			"properties": map[string]any{
				"success": map[string]any{"type": "boolean"},
				"data":    map[string]any{"type": "object"},
				"error":   map[string]any{"type": "string"},
				"info":    map[string]any{"type": "string"},
			},
			"required": []any{"success"},
		}
	}
}

// addDefaultError injects a 500 response into every operation that lacks one
func addDefaultError(spec map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	errResp := map[string]any{
		"description": "Internal Server Error",
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
			},
		},
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			resps, ok := op["responses"].(map[string]any)
			if !ok {
				resps = map[string]any{}
				op["responses"] = resps
			}
			if _, exists := resps["500"]; !exists {
				resps["500"] = errResp
			}
		}
	}
}

const baseDoc = `{
  "openapi": "3.0.3",
  "info": {"title": "modhook API", "version": "1"},
  "paths": {
    "/modules/{name}": {
      "get": {
        "summary": "Read a registered module",
        "parameters": [{"name": "name", "in": "path", "required": true, "schema": {"type": "string"}}],
        "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
      }
    },
    "/modules/{name}/builds": {
      "get": {
        "summary": "List queued builds of a module, oldest first",
        "parameters": [{"name": "name", "in": "path", "required": true, "schema": {"type": "string"}}],
        "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
      }
    },
    "/builds/{id}": {
      "get": {
        "summary": "Read a queued build",
        "parameters": [{"name": "id", "in": "path", "required": true, "schema": {"type": "string"}}],
        "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
      }
    },
    "/meta/version": {"get": {"summary": "Build information", "responses": {"200": {"description": "OK"}}}},
    "/meta/health": {"get": {"summary": "Liveness", "responses": {"200": {"description": "OK"}}}},
    "/meta/ready": {"get": {"summary": "Backend readiness", "responses": {"200": {"description": "OK"}, "503": {"description": "Unavailable"}}}}
  }
}`
