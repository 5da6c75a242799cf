package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

func TestRegisterRoutes(t *testing.T) {
	r := chi.NewRouter()
	registerRoutes(r, []string{"http://localhost:5173"}, false)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/summarize", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nowhere", http.StatusNotFound},
	}
	for _, tt := range tests {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
		if rr.Code != tt.want {
			t.Errorf("%s %s: status = %d, want %d", tt.method, tt.path, rr.Code, tt.want)
		}
	}
}

func TestRegisterRoutes_CORS(t *testing.T) {
	r := chi.NewRouter()
	registerRoutes(r, []string{"http://localhost:5173"}, false)

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		return rr
	}

	if got := preflight("http://localhost:5173").Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("allowed origin got %q", got)
	}
	if got := preflight("http://evil.example").Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("foreign origin got %q", got)
	}
}

func TestRegisterRoutes_ForwardedForOnlyBehindProxy(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		want       string
	}{
		{"direct clients keep the peer address", false, "192.0.2.10:4711"},
		{"trusted proxy forwards the client address", true, "203.0.113.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := chi.NewRouter()
			registerRoutes(r, []string{"http://localhost:5173"}, tt.trustProxy)
			r.Get("/peer", func(w http.ResponseWriter, req *http.Request) {
				_, _ = w.Write([]byte(req.RemoteAddr))
			})

			req := httptest.NewRequest(http.MethodGet, "/peer", nil)
			req.RemoteAddr = "192.0.2.10:4711"
			req.Header.Set("X-Forwarded-For", "203.0.113.7")
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			if got := rr.Body.String(); got != tt.want {
				t.Errorf("remote addr = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShutDownHandler(t *testing.T) {
	signals := make(chan os.Signal, 1)
	stop := make(chan bool)
	var group sync.WaitGroup
	ctx, cancel := context.WithCancel(context.Background())

	group.Add(1)
	go func() {
		defer group.Done()
		<-ctx.Done()
	}()

	go ShutDownHandler(ShutdownParams{
		GracefulShutdown: signals,
		StopExecution:    stop,
		Group:            &group,
		CloseServices:    cancel,
	})
	signals <- syscall.SIGTERM

	select {
	case <-stop:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown did not finish")
	}
}
