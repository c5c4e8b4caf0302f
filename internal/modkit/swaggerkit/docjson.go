// Package swaggerkit serves Swagger UI and an OpenAPI document assembled at runtime
package swaggerkit

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"sync"
)

// SpecMutator lets modules tweak the assembled spec before it is served
type SpecMutator func(map[string]any)

// Endpoint is a minimal route description modules register at mount time
type Endpoint struct {
	Method  string
	Path    string
	Tag     string
	Summary string
}

var (
	mu        sync.Mutex
	mutators  []SpecMutator
	endpoints []Endpoint
	info      = map[string]any{"title": "sitekit API", "version": "0.1.0"}
)

// Register adds a spec mutator
// call this from module init so it is wired automatically
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// Describe records an endpoint for the served document
func Describe(eps ...Endpoint) {
	mu.Lock()
	endpoints = append(endpoints, eps...)
	mu.Unlock()
}

// SetInfo overrides the document title and version
func SetInfo(title, version string) {
	mu.Lock()
	if title != "" {
		info["title"] = title
	}
	if version != "" {
		info["version"] = version
	}
	mu.Unlock()
}

// Reset clears registered endpoints and mutators, for tests
func Reset() {
	mu.Lock()
	mutators = nil
	endpoints = nil
	mu.Unlock()
}

func buildSpec() map[string]any {
	mu.Lock()
	eps := make([]Endpoint, len(endpoints))
	copy(eps, endpoints)
	muts := make([]SpecMutator, len(mutators))
	copy(muts, mutators)
	title := info["title"]
	version := info["version"]
	mu.Unlock()

	sort.Slice(eps, func(i, j int) bool {
		if eps[i].Path != eps[j].Path {
			return eps[i].Path < eps[j].Path
		}
		return eps[i].Method < eps[j].Method
	})

	paths := map[string]any{}
	for _, ep := range eps {
		node, ok := paths[ep.Path].(map[string]any)
		if !ok {
			node = map[string]any{}
			paths[ep.Path] = node
		}
		op := map[string]any{
			"summary": ep.Summary,
			"responses": map[string]any{
				"200": map[string]any{"description": "OK"},
				"500": map[string]any{
					"description": "Internal Server Error",
					"content": map[string]any{
						"application/json": map[string]any{
							"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
						},
					},
				},
			},
		}
		if ep.Tag != "" {
			op["tags"] = []any{ep.Tag}
		}
		node[strings.ToLower(ep.Method)] = op
	}

	spec := map[string]any{
		"openapi": "3.0.3",
		"info":    map[string]any{"title": title, "version": version},
		"servers": []any{map[string]any{"url": "/api/v1"}},
		"paths":   paths,
		"components": map[string]any{
			"schemas": map[string]any{
				"ErrorResponse": map[string]any{
					"type":        "object",
					"description": "Standard error response",
					"properties": map[string]any{
						"status_code": map[string]any{"type": "integer", "format": "int32"},
						"status":      map[string]any{"type": "string"},
						"code":        map[string]any{"type": "integer", "format": "int32"},
						"error":       map[string]any{"type": "string"},
						"request_id":  map[string]any{"type": "string"},
					},
					"required": []any{"status_code", "status"},
				},
			},
		},
	}

	for _, m := range muts {
		m(spec)
	}
	return spec
}

// serveDocJSON serves the assembled OpenAPI document
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(buildSpec())
	}
}
