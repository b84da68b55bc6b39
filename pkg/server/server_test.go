package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	a2asrv "trpc.group/trpc-go/trpc-a2a-go/server"
	"trpc.group/trpc-go/trpc-a2a-go/taskmanager"

	"github.com/nimbusworks/weatherd/pkg/a2a"
	"github.com/nimbusworks/weatherd/pkg/weather"
)

func testServer(t *testing.T, a2aHandler http.Handler) *Server {
	t.Helper()
	return New(Config{
		Host:       "127.0.0.1",
		Port:       0,
		A2AHandler: a2aHandler,
	})
}

// weatherApp assembles the real protocol stack the way serve does.
func weatherApp(t *testing.T) http.Handler {
	t.Helper()

	processor := weather.NewProcessor(weather.NewAgent(), nil)
	taskMgr, err := taskmanager.NewMemoryTaskManager(processor)
	if err != nil {
		t.Fatalf("creating task manager: %v", err)
	}

	app, err := a2asrv.NewA2AServer(weather.Card("http://127.0.0.1:8080/", "test"), a2a.NewHandler(taskMgr))
	if err != nil {
		t.Fatalf("creating a2a server: %v", err)
	}
	return app.Handler()
}

func TestHealthz(t *testing.T) {
	s := testServer(t, nil)

	req := httptest.NewRequest("GET", "/_healthz", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if body := w.Body.String(); body != `{"status":"ok"}` {
		t.Errorf("body = %q, want %q", body, `{"status":"ok"}`)
	}
}

func TestReadyz(t *testing.T) {
	s := testServer(t, nil)

	req := httptest.NewRequest("GET", "/readyz", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestMetricsRoute(t *testing.T) {
	s := testServer(t, nil)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestMountDoesNotShadowFixedRoutes(t *testing.T) {
	teapot := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	s := testServer(t, teapot)

	req := httptest.NewRequest("GET", "/_healthz", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("healthz status = %d, want %d", w.Code, http.StatusOK)
	}

	req = httptest.NewRequest("POST", "/", nil)
	w = httptest.NewRecorder()
	s.ServeHTTP(w, req)
	if w.Code != http.StatusTeapot {
		t.Errorf("root status = %d, want the mounted handler's %d", w.Code, http.StatusTeapot)
	}
}

func TestAgentCardRoute(t *testing.T) {
	s := testServer(t, weatherApp(t))

	req := httptest.NewRequest("GET", "/.well-known/agent.json", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "Weather Agent") {
		t.Errorf("card body %q does not name the agent", w.Body.String())
	}
}

func TestSendMessageAndLiveness(t *testing.T) {
	s := testServer(t, weatherApp(t))

	// Liveness before any protocol traffic.
	req := httptest.NewRequest("GET", "/_healthz", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("healthz before: status = %d", w.Code)
	}

	rpc := `{"jsonrpc":"2.0","id":"1","method":"message/send","params":{"message":{"kind":"message","messageId":"m-1","role":"user","parts":[{"kind":"text","text":"What is the weather in Lisbon?"}]}}}`
	req = httptest.NewRequest("POST", "/", strings.NewReader(rpc))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	s.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("message/send status = %d, body %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, "sunny") {
		t.Errorf("response %s does not carry the agent answer", body)
	}
	if strings.Contains(body, `"error"`) {
		t.Errorf("response %s carries a JSON-RPC error", body)
	}

	// Liveness after protocol traffic, same body.
	req = httptest.NewRequest("GET", "/_healthz", nil)
	w = httptest.NewRecorder()
	s.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Body.String() != `{"status":"ok"}` {
		t.Errorf("healthz after: status = %d, body = %q", w.Code, w.Body.String())
	}
}
