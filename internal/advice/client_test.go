package advice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	return cfg
}

func TestHTTPClient_Generate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/generate_workout", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "how much protein do I need", req.Prompt)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(generateResponse{Result: "About 1.8 g per kg."})
	}))
	defer srv.Close()

	client := NewHTTPClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Topic:  TopicNutrition,
		Prompt: "how much protein do I need",
	})

	require.NoError(t, err)
	assert.Equal(t, "About 1.8 g per kg.", resp.Text)
	assert.GreaterOrEqual(t, resp.LatencyMs, int64(0))
}

func TestHTTPClient_Generate_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50

	client := NewHTTPClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{
		Topic:  TopicGeneral,
		Prompt: "test",
	})

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestHTTPClient_Generate_RetriesThenFails(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(generateResponse{Error: "backend exploded"})
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1

	client := NewHTTPClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{
		Topic:  TopicGeneral,
		Prompt: "test",
	})

	assert.ErrorIs(t, err, ErrRetryExhausted)
	assert.Equal(t, int32(2), calls.Load())
}

func TestHTTPClient_Generate_InvalidOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": ""}`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 0

	client := NewHTTPClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Topic: TopicGeneral, Prompt: "x"})
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestService_FallsBackToTemplate(t *testing.T) {
	cfg := DefaultConfig() // disabled
	svc := NewService(cfg, nil)

	got := svc.Advise(context.Background(), TopicMotivation, "I feel lazy")
	assert.Equal(t, Template(TopicMotivation), got)
	assert.NotEmpty(t, got)
}

func TestService_PrefersBackendWhenEnabled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{Result: "backend says hi"})
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	svc := NewService(cfg, NewHTTPClient(cfg, NoopObserver{}))

	got := svc.Advise(context.Background(), TopicGeneral, "hello")
	assert.Equal(t, "backend says hi", got)
}

func TestService_DegradesOnBackendFailure(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1") // nothing listening
	cfg.MaxRetries = 0
	svc := NewService(cfg, NewHTTPClient(cfg, NoopObserver{}))

	got := svc.Advise(context.Background(), TopicStress, "I'm overwhelmed")
	assert.Equal(t, Template(TopicStress), got)
}

func TestTemplateUnknownTopicUsesGeneral(t *testing.T) {
	assert.Equal(t, Template(TopicGeneral), Template(Topic("bogus")))
}
