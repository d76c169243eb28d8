package fallback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"careassist/internal/validation"
)

// HuggingFace calls a Hugging Face text-generation inference endpoint.
type HuggingFace struct {
	baseURL   string
	model     string
	token     string
	maxLength int
	client    *http.Client
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
	Options    hfOptions    `json:"options"`
}

type hfParameters struct {
	MaxLength          int `json:"max_length"`
	NumReturnSequences int `json:"num_return_sequences"`
}

type hfOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

type hfError struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time,omitempty"`
}

// NewHuggingFace creates a client for model served under baseURL.
func NewHuggingFace(baseURL, model, token string, maxLength int, timeout time.Duration) (*HuggingFace, error) {
	if valid, msg := validation.ValidateURL(baseURL); !valid {
		return nil, fmt.Errorf("invalid huggingface base url: %s", msg)
	}
	if model == "" {
		return nil, fmt.Errorf("huggingface model is required")
	}
	if maxLength <= 0 {
		maxLength = 300
	}
	return &HuggingFace{
		baseURL:   strings.TrimRight(baseURL, "/"),
		model:     model,
		token:     token,
		maxLength: maxLength,
		client:    &http.Client{Timeout: timeout},
	}, nil
}

// Name returns the provider name.
func (h *HuggingFace) Name() string { return "huggingface" }

// Generate returns the first generated sequence for text, verbatim.
func (h *HuggingFace) Generate(ctx context.Context, text string) (string, error) {
	return h.generate(ctx, text, false)
}

// Warm loads the model on the inference server, waiting until it is ready.
func (h *HuggingFace) Warm(ctx context.Context) error {
	_, err := h.generate(ctx, "Hello", true)
	return err
}

func (h *HuggingFace) generate(ctx context.Context, text string, wait bool) (string, error) {
	payload, err := json.Marshal(hfRequest{
		Inputs: text,
		Parameters: hfParameters{
			MaxLength:          h.maxLength,
			NumReturnSequences: 1,
		},
		Options: hfOptions{WaitForModel: wait},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/models/"+h.model, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "CareAssist/1.0")
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr hfError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			if apiErr.EstimatedTime > 0 {
				return "", fmt.Errorf("huggingface: %s (ready in ~%.0fs)", apiErr.Error, apiErr.EstimatedTime)
			}
			return "", fmt.Errorf("huggingface: %s", apiErr.Error)
		}
		return "", fmt.Errorf("huggingface: unexpected status: %d", resp.StatusCode)
	}

	var generations []hfGeneration
	if err := json.Unmarshal(body, &generations); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(generations) == 0 {
		return "", ErrEmptyGeneration
	}
	return generations[0].GeneratedText, nil
}
