package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientSubmitSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/booking" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.Submit(context.Background(), filledFields()); err != nil {
		t.Fatalf("submit: %v", err)
	}
}

func TestClientSubmitLogicalFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"message":"Missing required fields"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Submit(context.Background(), filledFields())
	if err == nil {
		t.Fatal("expected error for ok:false")
	}
	if !strings.Contains(err.Error(), "Missing required fields") {
		t.Errorf("error should carry the server message, got %v", err)
	}
}

func TestClientSubmitOKFalseWith200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":false}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.Submit(context.Background(), filledFields()); err == nil {
		t.Fatal("a logically unsuccessful body must fail even with HTTP 200")
	}
}

func TestClientSubmitNetworkError(t *testing.T) {
	c := New("http://127.0.0.1:1")
	if err := c.Submit(context.Background(), filledFields()); err == nil {
		t.Fatal("expected network error")
	}
}
