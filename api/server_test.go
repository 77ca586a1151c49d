package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := httptest.NewServer(NewServer(log))
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, ts *httptest.Server, path, body string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Post(ts.URL+path, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var res map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("%s: %v", path, err)
	}
	return resp.StatusCode, res
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	d, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(d) != `{"status":"ok"}` {
		t.Errorf("got %d %s", resp.StatusCode, d)
	}
}

func TestEncodeDecode(t *testing.T) {
	ts := newTestServer(t)
	tests := []struct {
		path, body string
		want       map[string]any
	}{
		{"/v1/encode", `{"input": "c1cccc(C(=O)Cl)c1", "rings": true, "branches": true}`,
			map[string]any{"output": "cccccC=O)Cl))c6"}},
		{"/v1/encode", `{"input": "C1CC1"}`, map[string]any{"output": "C1CC1"}},
		{"/v1/decode", `{"input": "cccccC=O)Cl))c6", "rings": true, "branches": true}`,
			map[string]any{"output": "c1cccc(C(=O)Cl)c1"}},
		{"/v1/decode", `{"input": "CO)C", "branches": true}`, map[string]any{"output": "C(O)C"}},
	}
	for _, tc := range tests {
		status, got := post(t, ts, tc.path, tc.body)
		if status != http.StatusOK {
			t.Errorf("%s %s: status %d %v", tc.path, tc.body, status, got)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%s %s (-want +got):\n%s", tc.path, tc.body, diff)
		}
	}
}

func TestDecodeError(t *testing.T) {
	ts := newTestServer(t)
	status, got := post(t, ts, "/v1/decode", `{"input": "CC))C", "rings": true, "branches": true}`)
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("status %d", status)
	}
	if got["input"] != "CC))C" {
		t.Errorf("input %v", got["input"])
	}
	if _, ok := got["offset"].(float64); !ok {
		t.Errorf("offset %v", got["offset"])
	}
	if msg, _ := got["error"].(string); msg == "" {
		t.Errorf("no error message in %v", got)
	}
}

func TestBadRequest(t *testing.T) {
	ts := newTestServer(t)
	for _, body := range []string{`{"input":`, `{"input": 3}`, `{"smiles": "C"}`} {
		status, got := post(t, ts, "/v1/encode", body)
		if status != http.StatusBadRequest {
			t.Errorf("%s: status %d", body, status)
		}
		if _, ok := got["error"]; !ok {
			t.Errorf("%s: no error in %v", body, got)
		}
	}
	resp, err := http.Get(ts.URL + "/v1/encode")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("GET /v1/encode: status %d", resp.StatusCode)
	}
}
