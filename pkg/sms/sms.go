package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-jobportal-backend/config"
)

// Service delivers short text messages over SMS or WhatsApp through an HTTP
// gateway. Delivery failure never fails the caller's operation; callers
// report it alongside their own result.
type Service struct {
	gatewayURL string
	apiKey     string
	senderID   string
	client     *http.Client
}

// DeliveryReceipt describes the gateway's acknowledgement of a send.
type DeliveryReceipt struct {
	MessageID string
	Channel   string
	Status    string
}

type sendRequest struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Channel string `json:"channel"`
	Body    string `json:"body"`
}

type sendResponse struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

// NewService creates a dispatcher from gateway configuration
func NewService(cfg *config.Config) *Service {
	return &Service{
		gatewayURL: cfg.SMSGatewayURL,
		apiKey:     cfg.SMSGatewayKey,
		senderID:   cfg.SMSSenderID,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// IsConfigured reports whether the gateway settings are present
func (s *Service) IsConfigured() bool {
	return s.gatewayURL != "" && s.apiKey != ""
}

// Send delivers a message to recipient over the given channel ("sms" or
// "whatsapp"). Returns a receipt on success; any transport or gateway error
// comes back as a plain error for the caller to record.
func (s *Service) Send(ctx context.Context, recipient, message, channel string) (*DeliveryReceipt, error) {
	if !s.IsConfigured() {
		return nil, errors.New("sms: gateway not configured")
	}

	payload := sendRequest{
		To:      recipient,
		From:    s.senderID,
		Channel: channel,
		Body:    message,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("sms: encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.gatewayURL+"/messages", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("sms: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sms: gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	var result sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("sms: decoding gateway response: %w", err)
	}

	if resp.StatusCode >= 400 {
		msg := result.Error
		if msg == "" {
			msg = resp.Status
		}
		return nil, fmt.Errorf("sms: gateway rejected send: %s", msg)
	}

	return &DeliveryReceipt{
		MessageID: result.MessageID,
		Channel:   channel,
		Status:    result.Status,
	}, nil
}
