package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"bvetra/models"
)

// BitrixClient posts leads to a Bitrix24 inbound webhook.
type BitrixClient struct {
	WebhookURL string
	HTTPClient *http.Client
}

func NewBitrixClient(webhookURL string) *BitrixClient {
	return &BitrixClient{
		WebhookURL: webhookURL,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *BitrixClient) Configured() bool { return c.WebhookURL != "" }

// leadAddURL normalizes the webhook URL to target crm.lead.add. Tenant
// webhooks may already include the method; bare ones get it appended.
func (c *BitrixClient) leadAddURL() string {
	if strings.Contains(c.WebhookURL, "crm.lead.add") {
		return c.WebhookURL
	}
	return strings.TrimRight(c.WebhookURL, "/") + "/crm.lead.add.json"
}

type bitrixResponse struct {
	Result           json.RawMessage `json:"result"`
	Error            string          `json:"error"`
	ErrorDescription string          `json:"error_description"`
}

// CreateLead posts the given field map as a new CRM lead and returns the
// raw result payload.
func (c *BitrixClient) CreateLead(ctx context.Context, fields map[string]any) (json.RawMessage, error) {
	body, err := json.Marshal(map[string]any{
		"fields": fields,
		"params": map[string]string{"REGISTER_SONET_EVENT": "Y"},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.leadAddURL(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bitrix request: %w", err)
	}
	defer resp.Body.Close()

	var br bitrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&br); err != nil {
		return nil, fmt.Errorf("bitrix response decode: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("bitrix returned status %d: %s", resp.StatusCode, br.ErrorDescription)
	}
	if br.Error != "" {
		return nil, fmt.Errorf("bitrix error %s: %s", br.Error, br.ErrorDescription)
	}
	return br.Result, nil
}

// BookingLeadFields maps a booking to the CRM lead field set. Phone and
// email go in as typed value arrays; date, time and notes are assembled
// into the comments block.
func BookingLeadFields(req *models.BookingRequest) map[string]any {
	emails := []map[string]string{}
	if req.Email != "" {
		emails = append(emails, map[string]string{"VALUE": req.Email, "VALUE_TYPE": "WORK"})
	}
	return map[string]any{
		"TITLE":    fmt.Sprintf("Заявка: %s %s", req.Name, req.Route()),
		"NAME":     req.Name,
		"PHONE":    []map[string]string{{"VALUE": req.Phone, "VALUE_TYPE": "WORK"}},
		"EMAIL":    emails,
		"COMMENTS": fmt.Sprintf("Дата: %s %s\nПримечания: %s", req.Date, req.Time, req.Notes),
	}
}

// SubmissionLeadFields maps a generic site-form submission to CRM lead fields.
func SubmissionLeadFields(sub *models.LeadSubmission) map[string]any {
	leadType := sub.Type
	if leadType == "" {
		leadType = "Site"
	}
	phones := []map[string]string{}
	if sub.Fields.Phone != "" {
		phones = append(phones, map[string]string{"VALUE": sub.Fields.Phone, "VALUE_TYPE": "WORK"})
	}
	comments := sub.Fields.Comment()
	if sub.Fields.Service != "" {
		comments = fmt.Sprintf("%s\nУслуга: %s", comments, sub.Fields.Service)
	}
	return map[string]any{
		"TITLE":    fmt.Sprintf("Заявка с сайта — %s", leadType),
		"NAME":     sub.Fields.Name,
		"PHONE":    phones,
		"COMMENTS": comments,
	}
}

// BitrixChannel creates a CRM lead for each booking.
type BitrixChannel struct {
	Client *BitrixClient
}

func (c *BitrixChannel) Name() string { return "bitrix" }

func (c *BitrixChannel) Configured() bool {
	return c.Client != nil && c.Client.Configured()
}

func (c *BitrixChannel) Send(ctx context.Context, req *models.BookingRequest) error {
	_, err := c.Client.CreateLead(ctx, BookingLeadFields(req))
	return err
}
