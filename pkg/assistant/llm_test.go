package assistant

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"trainbot/pkg/railway"
	"trainbot/pkg/validate"

	"github.com/stretchr/testify/assert"
)

func quietFinalizer(url string) *LLMFinalizer {
	f := NewLLMFinalizer(url, "gsk-test", "llama-3.3-70b-versatile")
	f.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return f
}

func sampleOutcome() *Outcome {
	resp := twoTrains()
	return &Outcome{
		OriginCode:      "NDLS",
		DestinationCode: "MMCT",
		Date:            "25-12-2030",
		Response:        resp,
		Listing:         railway.FormatForDisplay(resp),
		Recommendation:  railway.Recommend(resp.Records),
	}
}

func TestLLMFinalizer_Polishes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer gsk-test", r.Header.Get("Authorization"))

		var req chatRequest
		if assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) && assert.Len(t, req.Messages, 2) {
			assert.Equal(t, "llama-3.3-70b-versatile", req.Model)
			assert.Equal(t, "system", req.Messages[0].Role)
			assert.Contains(t, req.Messages[1].Content, "Route check: NDLS to MMCT")
		}

		w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "## Trains\n* **12952** leaves at 16:55"}}]}`))
	}))
	defer server.Close()

	out := quietFinalizer(server.URL).Finalize(validate.Result{Valid: true}, sampleOutcome())
	assert.Equal(t, "Trains\n- 12952 leaves at 16:55", out)
}

func TestLLMFinalizer_FallsBack(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"status", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": "rate limited"}`))
		}},
		{"no choices", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices": []}`))
		}},
		{"empty content", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices": [{"message": {"content": "  "}}]}`))
		}},
		{"garbage", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			outcome := sampleOutcome()
			want := PlainFinalizer{}.Finalize(validate.Result{Valid: true}, outcome)
			assert.Equal(t, want, quietFinalizer(server.URL).Finalize(validate.Result{Valid: true}, outcome))
		})
	}
}

func TestLLMFinalizer_SkipsInvalidRequests(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	v := validate.Result{Issues: []string{"Departure station code too short"}, Suggestions: []string{"Use NDLS"}}
	out := quietFinalizer(server.URL).Finalize(v, nil)

	assert.False(t, called)
	assert.Contains(t, out, "Departure station code too short. Use NDLS")
}

func TestStripMarkdown(t *testing.T) {
	in := "# Title\n**Bold** and __under__ with `code`\n  * item\n+ other\n- kept"
	assert.Equal(t, "Title\nBold and under with code\n  - item\n- other\n- kept", StripMarkdown(in))
}
