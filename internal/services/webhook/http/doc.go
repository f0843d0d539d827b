package http

// DocPaths adds the webhook route to the served OpenAPI document. The route
// lives at the host root, so the operation overrides the api servers block
func DocPaths(spec map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		paths = map[string]any{}
		spec["paths"] = paths
	}
	result := map[string]any{
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/WebhookResult"},
			},
		},
	}
	withDesc := func(d string) map[string]any {
		out := map[string]any{"description": d}
		for k, v := range result {
			out[k] = v
		}
		return out
	}
	query := func(name, desc string) map[string]any {
		return map[string]any{"name": name, "in": "query", "description": desc, "schema": map[string]any{"type": "string"}}
	}
	paths["/webhook/gh/{name}"] = map[string]any{
		"post": map[string]any{
			"summary": "Receive a GitHub webhook delivery for a module",
			"servers": []any{map[string]any{"url": "/"}},
			"parameters": []any{
				map[string]any{"name": "name", "in": "path", "required": true, "schema": map[string]any{"type": "string"}},
				map[string]any{"name": "X-GitHub-Event", "in": "header", "required": true, "schema": map[string]any{"type": "string", "enum": []any{"ping", "create", "push"}}},
				query("subdir", "module subdirectory, ends with /"),
				query("version_prefix", "prefix stripped from tag names"),
			},
			"requestBody": map[string]any{
				"content": map[string]any{
					"application/json":                  map[string]any{"schema": map[string]any{"type": "object"}},
					"application/x-www-form-urlencoded": map[string]any{"schema": map[string]any{"type": "string", "format": "base64"}},
				},
			},
			"responses": map[string]any{
				"200": withDesc("accepted, or ignored with info"),
				"400": withDesc("rejected"),
				"413": withDesc("payload too large"),
			},
		},
	}
}
