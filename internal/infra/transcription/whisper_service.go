// Package transcription relays audio uploads to an external speech-to-text API.
package transcription

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"journal/config"
	"journal/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultRequestTimeout = 60 * time.Second

// whisperService calls an OpenAI-compatible transcription endpoint.
type whisperService struct {
	apiURL string
	apiKey string
	model  string
	client *http.Client
}

// NewWhisperService creates the transcription relay from configuration.
func NewWhisperService(cfg *config.Config) service.TranscriptionService {
	timeout := cfg.Transcription.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &whisperService{
		apiURL: cfg.Transcription.APIURL,
		apiKey: cfg.Transcription.APIKey,
		model:  cfg.Transcription.Model,
		client: &http.Client{Timeout: timeout},
	}
}

// Transcribe forwards the audio bytes as a multipart request and returns the
// recognized text. The relay adds nothing of its own; failures are reported
// to the caller unclassified and mapped at the response boundary.
func (s *whisperService) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", errors.Wrap(err, "failed to build multipart body")
	}
	if _, err := part.Write(audio); err != nil {
		return "", errors.Wrap(err, "failed to write audio payload")
	}
	if s.model != "" {
		if err := writer.WriteField("model", s.model); err != nil {
			return "", errors.Wrap(err, "failed to write model field")
		}
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, body)
	if err != nil {
		return "", errors.Wrap(err, "failed to build transcription request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "transcription request failed")
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read transcription response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("transcription API returned status %d", resp.StatusCode)
	}

	var parsed struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return "", errors.Wrap(err, "failed to decode transcription response")
	}

	return parsed.Text, nil
}
