package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const incrementProgram = `{
	"initial_state": "q0",
	"halt_states": ["halt"],
	"rules": [
		{"head": {"state": "q0", "symbol": "1"}, "tail": {"direction": "right", "next_state": "q0", "write_symbol": "0"}},
		{"head": {"state": "q0", "read": 0}, "tail": {"move": "stay", "next": "halt", "write": 1}},
		{"head": {"state": "q0", "symbol": "_"}, "tail": {"dir": 0, "state": "halt", "symbol": "1"}}
	]
}`

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeRun(t *testing.T, w *httptest.ResponseRecorder) RunResponse {
	t.Helper()
	var resp RunResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestRun_Bounded(t *testing.T) {
	h := NewHandler()

	w := post(t, h, "/v1/run", `{"program": `+incrementProgram+`, "tape": [1, 1, 0, 1]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeRun(t, w)
	assert.Equal(t, "halt", resp.State)
	assert.Equal(t, []string{"0", "0", "1", "1"}, resp.Tape)
	assert.Equal(t, 3, resp.Cycles)
	assert.Equal(t, 2, resp.Position)
	assert.True(t, resp.Halted)
	assert.Empty(t, resp.Error)

	_, err := uuid.Parse(resp.RunID)
	assert.NoError(t, err)
}

func TestRun_Sparse(t *testing.T) {
	h := NewHandler()

	w := post(t, h, "/v1/run", `{"program": `+incrementProgram+`, "tape": ["1", "1"], "sparse": true}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeRun(t, w)
	assert.Equal(t, []string{"0", "0", "1"}, resp.Tape)
	assert.Equal(t, 0, resp.Offset)
	assert.True(t, resp.Halted)
}

func TestRun_Errors(t *testing.T) {
	h := NewServer(WithMaxSteps(50)).Handler()

	t.Run("Out Of Bounds", func(t *testing.T) {
		w := post(t, h, "/v1/run", `{"program": `+incrementProgram+`, "tape": [1, 1]}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		resp := decodeRun(t, w)
		assert.Equal(t, "out_of_bounds", resp.Kind)
		assert.Equal(t, 2, resp.Cycles)
		assert.False(t, resp.Halted)
	})

	t.Run("Step Cap", func(t *testing.T) {
		loop := `{"initial": "a", "rules": [{"head": {"state": "a", "symbol": "_"}, "tail": {"direction": "right", "next_state": "a", "write_symbol": "_"}}]}`
		w := post(t, h, "/v1/run", `{"program": `+loop+`, "sparse": true, "max_steps": 1000}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		resp := decodeRun(t, w)
		assert.Equal(t, "exit_without_halting", resp.Kind)
		assert.Equal(t, 50, resp.Cycles)
	})

	t.Run("Missing Start", func(t *testing.T) {
		w := post(t, h, "/v1/run", `{"program": {"rules": []}}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Duplicate Head", func(t *testing.T) {
		dup := `{"rules": [
			{"head": {"state": "a", "symbol": "1"}, "tail": {"direction": "right", "next_state": "a", "write_symbol": "1"}},
			{"head": {"state": "a", "symbol": "1"}, "tail": {"direction": "left", "next_state": "a", "write_symbol": "1"}}
		]}`
		w := post(t, h, "/v1/run", `{"program": `+dup+`, "state": "a"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "duplicate rule head")
	})

	t.Run("Bad Body", func(t *testing.T) {
		w := post(t, h, "/v1/run", `{`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestValidate(t *testing.T) {
	h := NewHandler()

	w := post(t, h, "/v1/validate", `{"program": {"initial": "a", "halt": "h", "rules": [
		{"head": {"state": "a", "symbol": "0"}, "tail": {"direction": "right", "next_state": "ghost", "write_symbol": "0"}}
	]}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Valid    bool `json:"valid"`
		Findings []struct {
			Code  string `json:"code"`
			State string `json:"state"`
		} `json:"findings"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.Valid)
	require.NotEmpty(t, resp.Findings)
	assert.Equal(t, "dead_end", resp.Findings[0].Code)
	assert.Equal(t, "ghost", resp.Findings[0].State)
}

func TestHealthAndMetrics(t *testing.T) {
	h := NewHandler()

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	post(t, h, "/v1/run", `{"program": `+incrementProgram+`, "tape": [0]}`)

	req = httptest.NewRequest("GET", "/metrics", nil)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.True(t, bytes.Contains(body, []byte("turing_halts_total 1")), string(body))
	assert.True(t, bytes.Contains(body, []byte("turing_steps_total 1")), string(body))
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest("OPTIONS", "/v1/run", nil)
	w := httptest.NewRecorder()
	NewHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
