package main

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/exdevutem/api-exdev/tfIndex"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	corpus := tfIndex.NewCorpus()
	corpus.Update("1.pdf", "comun raro")
	corpus.Update("2.pdf", "comun raro raro")
	corpus.Update("3.pdf", "comun")
	corpus.Update("4.pdf", "comun unico")
	server := httptest.NewServer(newSearchServer(corpus).Handler())
	t.Cleanup(server.Close)
	return server
}

func TestHandleSearch(t *testing.T) {
	server := testServer(t)

	resp, err := http.Post(server.URL+"/api/search", "application/json", strings.NewReader(`{"search": "Raro"}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	var results []searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 scoring documents, got %+v", results)
	}
	if results[0].DocID != "2.pdf" || math.Abs(results[0].Score-2*math.Log(2)) > 1e-9 {
		t.Errorf("unexpected top result %+v", results[0])
	}
}

func TestHandleSearchTopN(t *testing.T) {
	server := testServer(t)

	resp, err := http.Post(server.URL+"/api/search", "application/json", strings.NewReader(`{"search": "raro", "topN": 1}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	var results []searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(results) != 1 || results[0].DocID != "2.pdf" {
		t.Errorf("unexpected results %+v", results)
	}
}

func TestHandleSearchBadRequests(t *testing.T) {
	server := testServer(t)

	tests := []struct {
		body string
		want int
	}{
		{`not json`, http.StatusBadRequest},
		{`{"search": "dos palabras"}`, http.StatusBadRequest},
		{`{"search": "1234"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		resp, err := http.Post(server.URL+"/api/search", "application/json", strings.NewReader(tt.body))
		if err != nil {
			t.Fatalf("POST: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != tt.want {
			t.Errorf("body %q: status %d, want %d", tt.body, resp.StatusCode, tt.want)
		}
	}

	resp, err := http.Get(server.URL + "/api/search")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("expected 405 for GET, got %d", resp.StatusCode)
	}
}

func TestHandleTop(t *testing.T) {
	server := testServer(t)

	resp, err := http.Get(server.URL + "/api/top?n=2")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	var terms []topResponse
	if err := json.NewDecoder(resp.Body).Decode(&terms); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []topResponse{{"comun", 4}, {"raro", 3}}
	if len(terms) != 2 || terms[0] != want[0] || terms[1] != want[1] {
		t.Errorf("top = %+v, want %+v", terms, want)
	}

	resp, err = http.Get(server.URL + "/api/top?n=abc")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for bad n, got %d", resp.StatusCode)
	}
}
