package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/craftroots/craftroots-backend/pkg/config"
)

// WhatsAppClient sends templated messages through the MSG91 outbound API.
type WhatsAppClient struct {
	cfg  config.WhatsAppConfig
	http *http.Client
}

// NewWhatsAppClient builds a client from the WhatsApp configuration.
func NewWhatsAppClient(cfg config.WhatsAppConfig) *WhatsAppClient {
	return &WhatsAppClient{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// ThankYouMessage carries the template values for the inquiry confirmation.
type ThankYouMessage struct {
	PhoneNumber  string
	CustomerName string
	ProductName  string
	ProductImage string
	Price        string
}

type templatePayload struct {
	IntegratedNumber string `json:"integrated_number"`
	ContentType      string `json:"content_type"`
	Payload          struct {
		MessagingProduct string `json:"messaging_product"`
		Type             string `json:"type"`
		Template         struct {
			Name     string `json:"name"`
			Language struct {
				Code   string `json:"code"`
				Policy string `json:"policy"`
			} `json:"language"`
			Namespace       string            `json:"namespace"`
			ToAndComponents []toAndComponents `json:"to_and_components"`
		} `json:"template"`
	} `json:"payload"`
}

type toAndComponents struct {
	To         []string                 `json:"to"`
	Components map[string]componentSlot `json:"components"`
}

type componentSlot struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// SendInquiryThankYou delivers the post-inquiry confirmation template.
func (c *WhatsAppClient) SendInquiryThankYou(ctx context.Context, msg ThankYouMessage) error {
	if !c.cfg.Configured() {
		return fmt.Errorf("whatsapp credentials not configured")
	}

	image := msg.ProductImage
	if image == "" {
		image = "https://via.placeholder.com/800x600"
	}
	name := msg.CustomerName
	if name == "" {
		name = "Valued Customer"
	}

	payload := templatePayload{
		IntegratedNumber: c.cfg.IntegratedNumber,
		ContentType:      "template",
	}
	payload.Payload.MessagingProduct = "whatsapp"
	payload.Payload.Type = "template"
	payload.Payload.Template.Name = c.cfg.TemplateName
	payload.Payload.Template.Language.Code = "en"
	payload.Payload.Template.Language.Policy = "deterministic"
	payload.Payload.Template.Namespace = c.cfg.Namespace
	payload.Payload.Template.ToAndComponents = []toAndComponents{
		{
			To: []string{FormatPhoneNumber(msg.PhoneNumber)},
			Components: map[string]componentSlot{
				"header_1": {Type: "image", Value: image},
				"body_1":   {Type: "text", Value: name},
				"body_2":   {Type: "text", Value: msg.ProductName},
				"body_3":   {Type: "text", Value: msg.Price},
				"body_4":   {Type: "text", Value: c.cfg.UPIID},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal whatsapp payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build whatsapp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("authkey", c.cfg.AuthKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send whatsapp request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("msg91 api error: %d - %s", resp.StatusCode, string(text))
	}

	var result struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode msg91 response: %w", err)
	}
	if result.Type == "error" {
		return fmt.Errorf("msg91 api error: %s", result.Message)
	}
	return nil
}

// FormatPhoneNumber normalizes an Indian phone number for the MSG91 API:
// digits only, with the 91 country code prefixed to 10-digit numbers.
func FormatPhoneNumber(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	if strings.HasPrefix(cleaned, "91") && len(cleaned) == 12 {
		return cleaned
	}
	if len(cleaned) == 10 {
		return "91" + cleaned
	}
	return cleaned
}
