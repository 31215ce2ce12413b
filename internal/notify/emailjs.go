package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

const emailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJSSender は EmailJS のメールリレーに送る。
// send(serviceId, templateId, params, publicKey) と同じ形。
type EmailJSSender struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	AdminEmail string

	Client   *http.Client
	Endpoint string
}

func NewEmailJSSender(serviceID, templateID, publicKey, adminEmail string) *EmailJSSender {
	return &EmailJSSender{
		ServiceID:  serviceID,
		TemplateID: templateID,
		PublicKey:  publicKey,
		AdminEmail: adminEmail,
		Client:     http.DefaultClient,
		Endpoint:   emailJSEndpoint,
	}
}

type emailJSPayload struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func (s *EmailJSSender) Notify(ctx context.Context, n Notification) error {
	// details は "key: value" 行に展開（キー順で安定させる）
	keys := make([]string, 0, len(n.Details))
	for k := range n.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %s", k, n.Details[k]))
	}

	payload := emailJSPayload{
		ServiceID:  s.ServiceID,
		TemplateID: s.TemplateID,
		UserID:     s.PublicKey,
		TemplateParams: map[string]string{
			"to_email": s.AdminEmail,
			"subject":  n.Subject,
			"message":  n.Message,
			"details":  strings.Join(lines, "\n"),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("emailjs: status %d", resp.StatusCode)
	}
	return nil
}
