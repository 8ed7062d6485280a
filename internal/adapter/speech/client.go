// Package speech is a client for an ElevenLabs-compatible text-to-speech and
// speech-to-text API.
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/heartmarshall/receptionist-backend/internal/config"
)

// ErrDisabled is returned when no API key is configured.
var ErrDisabled = errors.New("speech: not configured")

// APIError is a non-2xx answer from the vendor.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("speech: status %d: %s", e.Status, e.Body)
}

// Audio is synthesized speech.
type Audio struct {
	Data        []byte
	ContentType string
}

// Transcript is the result of a transcription.
type Transcript struct {
	Text         string `json:"text"`
	LanguageCode string `json:"language_code"`
}

// Client calls the vendor API with the xi-api-key header.
type Client struct {
	baseURL        string
	apiKey         string
	defaultVoiceID string
	ttsModel       string
	sttModel       string
	httpClient     *http.Client
	log            *slog.Logger
}

// NewClient creates a Client from configuration.
func NewClient(cfg config.SpeechConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:         cfg.APIKey,
		defaultVoiceID: cfg.DefaultVoiceID,
		ttsModel:       cfg.TTSModel,
		sttModel:       cfg.STTModel,
		httpClient:     &http.Client{Timeout: cfg.RequestTimeout},
		log:            logger.With("adapter", "speech"),
	}
}

// Enabled reports whether the client has credentials.
func (c *Client) Enabled() bool { return c.apiKey != "" }

// Synthesize converts text to MP3 audio. An empty voiceID uses the default voice.
func (c *Client) Synthesize(ctx context.Context, text, voiceID string) (*Audio, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}
	if voiceID == "" {
		voiceID = c.defaultVoiceID
	}

	payload, err := json.Marshal(map[string]string{"text": text, "model_id": c.ttsModel})
	if err != nil {
		return nil, fmt.Errorf("speech: encode request: %w", err)
	}

	endpoint := c.baseURL + "/v1/text-to-speech/" + url.PathEscape(voiceID) + "?output_format=mp3_44100_128"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("speech: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	raw, header, err := c.do(ctx, req, 0)
	if err != nil {
		return nil, err
	}

	ct := header.Get("Content-Type")
	if ct == "" {
		ct = "audio/mpeg"
	}
	return &Audio{Data: raw, ContentType: ct}, nil
}

// Transcribe converts audio to text. language is an optional ISO-639 hint.
func (c *Client) Transcribe(ctx context.Context, audio io.Reader, filename, language string) (*Transcript, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("model_id", c.sttModel); err != nil {
		return nil, fmt.Errorf("speech: build form: %w", err)
	}
	if language != "" {
		if err := mw.WriteField("language_code", language); err != nil {
			return nil, fmt.Errorf("speech: build form: %w", err)
		}
	}
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("speech: build form: %w", err)
	}
	if _, err := io.Copy(fw, audio); err != nil {
		return nil, fmt.Errorf("speech: copy audio: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("speech: build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/speech-to-text", &body)
	if err != nil {
		return nil, fmt.Errorf("speech: create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	raw, _, err := c.do(ctx, req, 1<<20)
	if err != nil {
		return nil, err
	}

	var tr Transcript
	if err := json.Unmarshal(raw, &tr); err != nil {
		return nil, fmt.Errorf("speech: decode json: %w", err)
	}
	tr.Text = strings.TrimSpace(tr.Text)
	return &tr, nil
}

// do sends req and returns the body. limit 0 means unbounded.
func (c *Client) do(ctx context.Context, req *http.Request, limit int64) ([]byte, http.Header, error) {
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "speech request failed", slog.String("path", req.URL.Path), slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("speech: request failed: %w", err)
	}
	defer resp.Body.Close()

	var r io.Reader = resp.Body
	if limit > 0 {
		r = io.LimitReader(resp.Body, limit)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("speech: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.WarnContext(ctx, "speech error response", slog.String("path", req.URL.Path), slog.Int("status", resp.StatusCode))
		return nil, nil, &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	c.log.DebugContext(ctx, "speech response", slog.String("path", req.URL.Path), slog.Int("bytes", len(raw)))
	return raw, resp.Header, nil
}
