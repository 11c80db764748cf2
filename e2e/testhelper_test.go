package e2e

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cliptrim/api/internal/client"
	"github.com/cliptrim/api/internal/handler"
	"github.com/cliptrim/api/internal/service"
	"github.com/cliptrim/api/internal/storage"
	"github.com/cliptrim/api/internal/transcoder"
)

// okFetcher writes a fixed payload to the destination path.
type okFetcher struct {
	payload []byte
}

func (f *okFetcher) DownloadToFile(_ context.Context, _, dest string) (int64, error) {
	if err := os.WriteFile(dest, f.payload, 0o644); err != nil {
		return 0, err
	}
	return int64(len(f.payload)), nil
}

// failFetcher simulates an unreachable source URL.
type failFetcher struct{}

func (failFetcher) DownloadToFile(_ context.Context, url, _ string) (int64, error) {
	return 0, &client.FetchError{URL: url, Err: context.DeadlineExceeded}
}

// okTrimmer writes a fake transcoded output.
type okTrimmer struct{}

func (okTrimmer) Trim(_ context.Context, spec transcoder.TrimSpec) error {
	return os.WriteFile(spec.OutputPath, []byte("trimmed video payload"), 0o644)
}

// failTrimmer simulates a non-zero ffmpeg exit.
type failTrimmer struct{}

func (failTrimmer) Trim(_ context.Context, _ transcoder.TrimSpec) error {
	return &transcoder.TranscodeError{Output: "Invalid data found when processing input", Err: context.Canceled}
}

// testApp holds all components needed for testing
type testApp struct {
	app   *fiber.App
	store *storage.Store
}

// setupApp creates a Fiber app identical to main.go but with the remote
// fetch and the ffmpeg subprocess replaced by the given fakes.
func setupApp(t *testing.T, fetcher service.VideoFetcher, trimmer service.VideoTrimmer) *testApp {
	t.Helper()

	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("storage.New: %v", err)
	}

	trimService := service.NewTrimService(store, fetcher, trimmer, t.TempDir(), "http://localhost:8080")
	cleanupService := service.NewCleanupService(store, 30*time.Minute, time.Hour)

	validate := validator.New()
	trimHandler := handler.NewTrimHandler(trimService, validate)
	videoHandler := handler.NewVideoHandler(store)
	statusHandler := handler.NewStatusHandler(store, cleanupService)

	app := fiber.New()
	app.Use(cors.New())

	app.Get("/", statusHandler.Root)
	app.Get("/health", statusHandler.Health)
	app.Get("/cleanup", statusHandler.Cleanup)
	app.Post("/trim", trimHandler.Trim)
	app.Get("/video/:filename", videoHandler.Serve)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return &testApp{app: app, store: store}
}

func doRequest(app *fiber.App, method, path, body string, headers map[string]string) (*http.Response, error) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return app.Test(req, -1)
}

func assertStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want %d (body: %s)", resp.StatusCode, want, body)
	}
}

func parseJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("parsing JSON %q: %v", data, err)
	}
	return body
}

func errorCode(t *testing.T, body map[string]interface{}) string {
	t.Helper()
	errField, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error envelope, got %v", body)
	}
	code, _ := errField["code"].(string)
	return code
}
