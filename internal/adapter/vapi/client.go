// Package vapi is a client for the voice platform's assistant API.
package vapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/heartmarshall/receptionist-backend/internal/config"
)

// ErrDisabled is returned when no API key is configured.
var ErrDisabled = errors.New("vapi: not configured")

// APIError is a non-2xx answer from the platform.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("vapi: status %d: %s", e.Status, e.Body)
}

// Retryable reports whether repeating the request may succeed.
func (e *APIError) Retryable() bool {
	return e.Status == http.StatusTooManyRequests || e.Status >= 500
}

// Assistant is the assistant document sent to the platform.
type Assistant struct {
	Name            string            `json:"name"`
	FirstMessage    string            `json:"firstMessage,omitempty"`
	Model           Model             `json:"model"`
	Voice           Voice             `json:"voice"`
	ServerURL       string            `json:"serverUrl,omitempty"`
	ServerURLSecret string            `json:"serverUrlSecret,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

type Model struct {
	Provider string    `json:"provider"`
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Voice struct {
	Provider string `json:"provider"`
	VoiceID  string `json:"voiceId"`
}

// AssistantRef is the part of the platform's answer the backend keeps.
type AssistantRef struct {
	ID string `json:"id"`
}

// Client calls the platform REST API with a bearer API key.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from configuration.
func NewClient(cfg config.VAPIConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		log:        logger.With("adapter", "vapi"),
	}
}

// Enabled reports whether the client has credentials.
func (c *Client) Enabled() bool { return c.apiKey != "" }

// CreateAssistant registers a new assistant and returns its platform id.
func (c *Client) CreateAssistant(ctx context.Context, a Assistant) (*AssistantRef, error) {
	return c.send(ctx, http.MethodPost, "/assistant", a)
}

// UpdateAssistant replaces the assistant with the given platform id.
func (c *Client) UpdateAssistant(ctx context.Context, id string, a Assistant) (*AssistantRef, error) {
	return c.send(ctx, http.MethodPatch, "/assistant/"+url.PathEscape(id), a)
}

func (c *Client) send(ctx context.Context, method, path string, body any) (*AssistantRef, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("vapi: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("vapi: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	c.log.DebugContext(ctx, "vapi request", slog.String("method", method), slog.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("vapi: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.WarnContext(ctx, "vapi error response",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return nil, &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	var ref AssistantRef
	if err := json.Unmarshal(raw, &ref); err != nil {
		return nil, fmt.Errorf("vapi: decode json: %w", err)
	}
	if ref.ID == "" {
		return nil, errors.New("vapi: response without assistant id")
	}
	return &ref, nil
}
