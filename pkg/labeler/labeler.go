// Package labeler assigns class labels to image files by querying a local
// vision model. It implements the manifest package's Labeler interface so
// generated manifests can carry model-produced labels instead of a
// constant.
package labeler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/menta2k/dataprep/pkg/client"
	"github.com/menta2k/dataprep/pkg/imageio"
	"github.com/menta2k/dataprep/pkg/types"
)

// DefaultPrompt asks the model for one dataset class label.
const DefaultPrompt = `You are an image dataset labeler.

Return JSON only:
{
  "label": "string",
  "confidence": 0.0,
  "tags": ["tag1", "tag2", "tag3"]
}

HARD RULES
- label is a single lowercase class name (e.g. "cat", "street", "document").
- confidence is in [0,1].
- Tags: lowercase, concise, no punctuation or duplicates.
- JSON only. No markdown, no code fences, no comments, no trailing commas.`

// Config controls how images are prepared for and queried against the
// vision model.
type Config struct {
	// Model is the vision model name.
	Model string
	// Prompt overrides DefaultPrompt.
	Prompt string
	// MaxSendSize is the longest image side sent to the model in pixels;
	// 0 sends the original.
	MaxSendSize int
	// SendQuality is the JPEG quality for the image sent to the model.
	SendQuality int
	// FallbackLabel is used when the model response cannot be parsed.
	FallbackLabel string
}

// DefaultConfig returns the labeler defaults.
func DefaultConfig() Config {
	return Config{
		Model:         "openbmb/minicpm-v4.5",
		Prompt:        DefaultPrompt,
		MaxSendSize:   1536,
		SendQuality:   85,
		FallbackLabel: "unlabeled",
	}
}

// Labeler labels image files through a LabelClient.
type Labeler struct {
	client client.LabelClient
	cfg    Config
	log    *slog.Logger
}

// New creates a Labeler. Zero config fields fall back to DefaultConfig
// values.
func New(logger *slog.Logger, labelClient client.LabelClient, cfg Config) *Labeler {
	defaults := DefaultConfig()
	if cfg.Model == "" {
		cfg.Model = defaults.Model
	}
	if cfg.Prompt == "" {
		cfg.Prompt = defaults.Prompt
	}
	if cfg.SendQuality == 0 {
		cfg.SendQuality = defaults.SendQuality
	}
	if cfg.FallbackLabel == "" {
		cfg.FallbackLabel = defaults.FallbackLabel
	}
	return &Labeler{client: labelClient, cfg: cfg, log: logger}
}

// Label loads the image at path, queries the model and returns the class
// label. An unparseable model response yields the fallback label rather
// than an error; load and transport failures are returned to the caller.
func (l *Labeler) Label(ctx context.Context, path string) (string, error) {
	img, err := imageio.Load(path)
	if err != nil {
		return "", fmt.Errorf("failed to load image: %w", err)
	}

	payload, err := imageio.EncodeJPEG(img, l.cfg.MaxSendSize, l.cfg.SendQuality)
	if err != nil {
		return "", fmt.Errorf("failed to encode image for model: %w", err)
	}

	raw, err := l.client.Query(ctx, l.cfg.Model, l.cfg.Prompt, payload)
	if err != nil {
		return "", err
	}

	result := parseLabelResult(raw, l.cfg.FallbackLabel)
	l.log.Debug("model label",
		"file", filepath.Base(path),
		"label", result.Label,
		"confidence", result.Confidence)
	return result.Label, nil
}

// parseLabelResult parses the model response, falling back when no usable
// JSON is present.
func parseLabelResult(raw, fallback string) types.LabelResult {
	raw = sanitizeModelJSON(raw)

	var result types.LabelResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return types.LabelResult{Label: fallback}
	}

	result.Label = strings.ToLower(strings.TrimSpace(result.Label))
	if result.Label == "" {
		return types.LabelResult{Label: fallback}
	}
	return result
}

// sanitizeModelJSON removes code fences, comments, and trailing commas from
// the model's JSON response.
func sanitizeModelJSON(raw string) string {
	raw = strings.TrimSpace(raw)

	// Strip triple-backtick fences if present
	if strings.HasPrefix(raw, "```") {
		if i := strings.Index(raw, "\n"); i >= 0 {
			raw = raw[i+1:]
		}
		if j := strings.LastIndex(raw, "```"); j >= 0 {
			raw = raw[:j]
		}
	}
	raw = strings.TrimSpace(raw)
	raw = strings.Trim(raw, "`")

	// Remove /* ... */ block comments
	reBlock := regexp.MustCompile(`(?s)/\*.*?\*/`)
	raw = reBlock.ReplaceAllString(raw, "")

	// Remove // line/inline comments
	reLine := regexp.MustCompile(`(?m)^\s*//.*$`)
	raw = reLine.ReplaceAllString(raw, "")
	reInline := regexp.MustCompile(`(?m)//.*$`)
	raw = reInline.ReplaceAllString(raw, "")

	// Remove trailing commas before } or ]
	reTrailing := regexp.MustCompile(`,(\s*[}\]])`)
	raw = reTrailing.ReplaceAllString(raw, "$1")

	// Keep only the outermost {...}
	if start := strings.Index(raw, "{"); start >= 0 {
		if end := strings.LastIndex(raw, "}"); end > start {
			raw = raw[start : end+1]
		}
	}
	return strings.TrimSpace(raw)
}
