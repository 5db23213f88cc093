package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAnalyzeSuccess(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")

		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Image != "aW1hZ2U=" {
			t.Errorf("unexpected image payload %q", req.Image)
		}
		if req.Prompt == "" {
			t.Error("expected default prompt to be filled in")
		}

		json.NewEncoder(w).Encode(Result{
			Name:     "Bulletproof coffee",
			Score:    92,
			Macros:   Macros{Carb: 2, Protein: 8, Fat: 90},
			Feedback: "Solid keto choice.",
			Foods:    []string{"coffee", "butter"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", 5*time.Second)
	res, err := c.Analyze(context.Background(), "aW1hZ2U=", "")
	if err != nil {
		t.Fatal(err)
	}
	if res.Name != "Bulletproof coffee" || res.Score != 92 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Macros.Fat != 90 || len(res.Foods) != 2 {
		t.Fatalf("unexpected result detail: %+v", res)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Fatal("expected a request id header")
	}
}

func TestAnalyzeServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	_, err := c.Analyze(context.Background(), "aW1hZ2U=", "")
	if !errors.Is(err, ErrService) {
		t.Fatalf("expected ErrService, got %v", err)
	}
}

func TestAnalyzeMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	_, err := c.Analyze(context.Background(), "aW1hZ2U=", "")
	if !errors.Is(err, ErrBadResponse) {
		t.Fatalf("expected ErrBadResponse, got %v", err)
	}
}

func TestAnalyzeContractViolation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Result{Name: "Mystery dish", Score: 250})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	_, err := c.Analyze(context.Background(), "aW1hZ2U=", "")
	if !errors.Is(err, ErrBadResponse) {
		t.Fatalf("expected ErrBadResponse for out-of-range score, got %v", err)
	}
}

func TestAnalyzeNoEndpoint(t *testing.T) {
	c := NewClient("", "", time.Second)
	_, err := c.Analyze(context.Background(), "aW1hZ2U=", "")
	if !errors.Is(err, ErrService) {
		t.Fatalf("expected ErrService, got %v", err)
	}
}

func TestAnalyzeEmptyImage(t *testing.T) {
	c := NewClient("http://localhost:1", "", time.Second)
	_, err := c.Analyze(context.Background(), "", "")
	if !errors.Is(err, ErrBadResponse) {
		t.Fatalf("expected ErrBadResponse, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	good := Result{Name: "Salad", Score: 100}
	if err := good.Validate(); err != nil {
		t.Fatal(err)
	}

	for _, bad := range []Result{
		{Name: "", Score: 50},
		{Name: "Salad", Score: -1},
		{Name: "Salad", Score: 101},
	} {
		if err := bad.Validate(); !errors.Is(err, ErrBadResponse) {
			t.Errorf("Validate(%+v): expected ErrBadResponse, got %v", bad, err)
		}
	}
}
