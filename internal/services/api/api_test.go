package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"modhook/internal/platform/config"
	phttp "modhook/internal/platform/net/http"
	webhookmod "modhook/internal/services/webhook/module"

	"github.com/go-chi/chi/v5"
)

func mounted() http.Handler {
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), Options{
		Config: config.New(),
		Webhook: webhookmod.Options{
			RegistryBackend: webhookmod.BackendMemory,
			MetaBackend:     webhookmod.BackendMemory,
			StatusBaseURL:   "/api/v1",
		},
	})
	return mux
}

func TestMount_PingThenRead(t *testing.T) {
	h := mounted()

	body := `{"repository":{"full_name":"Luca-Rand/Testing","description":"d","stargazers_count":4}}`
	req := httptest.NewRequest(http.MethodPost, "/webhook/gh/ltest2", strings.NewReader(body))
	req.Header.Set("X-GitHub-Event", "ping")
	req.Header.Set("X-GitHub-Delivery", "d-1")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != "application/json" {
		t.Fatalf("ping: %d %q %s", rec.Code, rec.Header().Get("Content-Type"), rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/modules/ltest2/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("read: %d %s", rec.Code, rec.Body.String())
	}
	var env struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env.Data["repository"] != "luca-rand/testing" || env.Data["metadata_status"] != "ok" || env.Data["star_count"] != float64(4) {
		t.Fatalf("module = %v", env.Data)
	}
}

func TestMount_EmptyNameIsNotRedirected(t *testing.T) {
	h := mounted()
	req := httptest.NewRequest(http.MethodPost, "/webhook/gh/", strings.NewReader(`{}`))
	req.Header.Set("X-GitHub-Event", "ping")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest || rec.Body.String() != `{"success":false,"error":"no module name specified"}` {
		t.Fatalf("empty name: %d %s", rec.Code, rec.Body.String())
	}
}

func TestMount_MetaAndHeartbeat(t *testing.T) {
	h := mounted()
	for _, path := range []string{"/health", "/api/v1/meta/health", "/api/v1/meta/ready", "/api/v1/meta/version"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: %d %s", path, rec.Code, rec.Body.String())
		}
	}
}
