package e2e

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestTrim_EndToEnd(t *testing.T) {
	ta := setupApp(t, &okFetcher{payload: []byte("raw source bytes")}, okTrimmer{})

	resp, err := doRequest(ta.app, http.MethodPost, "/trim",
		`{"video_url":"https://example.com/clip.mp4","start_time":2,"end_time":9,"fade_duration":0.5}`, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusOK)

	body := parseJSON(t, resp)
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}
	videoURL, _ := body["video_url"].(string)
	if !strings.HasSuffix(videoURL, ".mp4") {
		t.Fatalf("video_url = %q, want .mp4 suffix", videoURL)
	}

	// The returned URL must be retrievable and serve the transcoded bytes.
	path := videoURL[strings.Index(videoURL, "/video/"):]
	getResp, err := doRequest(ta.app, http.MethodGet, path, "", nil)
	if err != nil {
		t.Fatalf("retrieval failed: %v", err)
	}
	assertStatus(t, getResp, http.StatusOK)

	data, _ := io.ReadAll(getResp.Body)
	if string(data) != "trimmed video payload" {
		t.Errorf("served bytes = %q, want the stored output", data)
	}
}

func TestTrim_FetchFailure(t *testing.T) {
	ta := setupApp(t, failFetcher{}, okTrimmer{})

	resp, err := doRequest(ta.app, http.MethodPost, "/trim",
		`{"video_url":"https://unreachable.example.com/v.mp4"}`, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusInternalServerError)

	body := parseJSON(t, resp)
	if code := errorCode(t, body); code != "FETCH_ERROR" {
		t.Errorf("error code = %q, want FETCH_ERROR", code)
	}

	if n, _ := ta.store.Count(); n != 0 {
		t.Errorf("storage must be unchanged after a failed fetch, has %d files", n)
	}
}

func TestTrim_TranscodeFailure(t *testing.T) {
	ta := setupApp(t, &okFetcher{payload: []byte("src")}, failTrimmer{})

	resp, err := doRequest(ta.app, http.MethodPost, "/trim",
		`{"video_url":"https://example.com/v.mp4"}`, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusInternalServerError)

	body := parseJSON(t, resp)
	if code := errorCode(t, body); code != "TRANSCODE_ERROR" {
		t.Errorf("error code = %q, want TRANSCODE_ERROR", code)
	}
	if n, _ := ta.store.Count(); n != 0 {
		t.Errorf("storage must be unchanged after a failed transcode, has %d files", n)
	}
}

func TestTrim_ValidationFailures(t *testing.T) {
	ta := setupApp(t, &okFetcher{payload: []byte("src")}, okTrimmer{})

	tests := []struct {
		name string
		body string
	}{
		{"missing url", `{"start_time":0,"end_time":7}`},
		{"not a url", `{"video_url":"not a url"}`},
		{"negative start", `{"video_url":"https://example.com/v.mp4","start_time":-1}`},
		{"end before start", `{"video_url":"https://example.com/v.mp4","start_time":9,"end_time":2}`},
		{"end equals start", `{"video_url":"https://example.com/v.mp4","start_time":3,"end_time":3}`},
		{"fade exceeds range", `{"video_url":"https://example.com/v.mp4","start_time":0,"end_time":2,"fade_duration":3}`},
		{"malformed json", `{"video_url":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := doRequest(ta.app, http.MethodPost, "/trim", tt.body, nil)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			assertStatus(t, resp, http.StatusBadRequest)

			body := parseJSON(t, resp)
			if code := errorCode(t, body); code != "VALIDATION_ERROR" {
				t.Errorf("error code = %q, want VALIDATION_ERROR", code)
			}
		})
	}

	if n, _ := ta.store.Count(); n != 0 {
		t.Errorf("rejected requests must not create files, has %d", n)
	}
}

func TestTrim_DefaultsApplied(t *testing.T) {
	ta := setupApp(t, &okFetcher{payload: []byte("src")}, okTrimmer{})

	// Only the URL given: defaults (end=7, fade=0.5) must pass validation.
	resp, err := doRequest(ta.app, http.MethodPost, "/trim",
		`{"video_url":"https://example.com/v.mp4"}`, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusOK)

	body := parseJSON(t, resp)
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}
}
