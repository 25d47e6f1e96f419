package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bvetra/handlers"
	"bvetra/services/notify"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func postLead(t *testing.T, h *handlers.LeadHandler, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	req := httptest.NewRequest(http.MethodPost, "/api/leads", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	h.Create(c)
	return w
}

func TestLeadRequiresConfiguredWebhook(t *testing.T) {
	h := handlers.NewLeadHandler(notify.NewBitrixClient(""), zap.NewNop())

	w := postLead(t, h, []byte(`{"type":"Contact","fields":{"name":"Ivan"}}`))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when webhook unset, got %d", w.Code)
	}
}

func TestLeadForwardsToCRM(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		w.Write([]byte(`{"result": 7}`))
	}))
	defer srv.Close()

	h := handlers.NewLeadHandler(notify.NewBitrixClient(srv.URL), zap.NewNop())
	w := postLead(t, h, []byte(`{"type":"Vacancy","fields":{"name":"Ivan","phone":"+375291234567","about":"driver"}}`))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["ok"] != true {
		t.Errorf("expected ok:true, got %v", resp)
	}

	fields := captured["fields"].(map[string]any)
	if fields["TITLE"] != "Заявка с сайта — Vacancy" {
		t.Errorf("unexpected TITLE: %v", fields["TITLE"])
	}
}

func TestLeadCRMFailureIsSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"ACCESS_DENIED","error_description":"no"}`))
	}))
	defer srv.Close()

	h := handlers.NewLeadHandler(notify.NewBitrixClient(srv.URL), zap.NewNop())
	w := postLead(t, h, []byte(`{"fields":{"name":"Ivan"}}`))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on CRM error, got %d", w.Code)
	}
}
