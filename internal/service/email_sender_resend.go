package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ResendEmailSender delivers OTP codes through the Resend HTTP API.
type ResendEmailSender struct {
	APIKey     string
	HTTPClient *http.Client
	From       string
}

func NewResendEmailSender(apiKey string, from string) *ResendEmailSender {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(from) == "" {
		return &ResendEmailSender{}
	}
	return &ResendEmailSender{
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		From:       from,
	}
}

func (s *ResendEmailSender) SendVerificationOTP(ctx context.Context, email string, code string) error {
	if strings.TrimSpace(s.APIKey) == "" {
		return errors.New("email sender not configured")
	}
	subject := "Verify your email"
	html := fmt.Sprintf("<p>Your verification code is:</p><h2>%s</h2><p>It expires in 10 minutes.</p>", code)
	text := fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code)
	return s.send(ctx, email, subject, html, text)
}

func (s *ResendEmailSender) SendPasswordResetOTP(ctx context.Context, email string, code string) error {
	if strings.TrimSpace(s.APIKey) == "" {
		return errors.New("email sender not configured")
	}
	subject := "Reset your password"
	html := fmt.Sprintf("<p>Your password reset code is:</p><h2>%s</h2><p>It expires in 10 minutes.</p>", code)
	text := fmt.Sprintf("Your password reset code is %s. It expires in 10 minutes.", code)
	return s.send(ctx, email, subject, html, text)
}

func (s *ResendEmailSender) send(ctx context.Context, to string, subject string, html string, text string) error {
	if s.HTTPClient == nil {
		s.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	payload := map[string]any{
		"from":    s.From,
		"to":      []string{to},
		"subject": subject,
		"html":    html,
		"text":    text,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(data))
	if err != nil {
		return err
	}
	request.Header.Set("Authorization", "Bearer "+s.APIKey)
	request.Header.Set("Content-Type", "application/json")
	response, err := s.HTTPClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	if response.StatusCode >= 300 {
		return fmt.Errorf("resend email failed with status %d", response.StatusCode)
	}
	return nil
}
