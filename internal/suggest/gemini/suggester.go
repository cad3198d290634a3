package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/resume-forge/resume-forge/internal/analysis"
	"github.com/resume-forge/resume-forge/internal/logger"
	"github.com/resume-forge/resume-forge/internal/resume"
	"github.com/resume-forge/resume-forge/internal/textutil"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

// resumeCacher is implemented by generators that can pin the resume payload
// in a server-side cache across suggestion runs.
type resumeCacher interface {
	EnsureResumeCache(ctx context.Context, recordID, displayName, payload string) (string, error)
	GenerateContentWithCache(ctx context.Context, prompt, cacheName string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const (
	defaultMaxLogLength = 200
	retryDelay          = 2 * time.Second
)

// Suggester asks Gemini for improvement suggestions over a record and its
// analysis. Implements suggest.Suggester.
type Suggester struct {
	generator  contentGenerator
	logger     *zap.Logger
	maxRetries int
	maxLogLen  int
}

func NewSuggester(generator contentGenerator, log *zap.Logger, maxRetries, maxLogLength int) *Suggester {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Suggester{
		generator:  generator,
		logger:     logger.WithCommonFields(log, "gemini", generator.Model()),
		maxRetries: maxRetries,
		maxLogLen:  maxLogLength,
	}
}

// Suggest builds the prompt from the record and analysis and parses the
// model's JSON reply. When the generator supports resume caching, the record
// payload goes into a cached-content resource and only the analysis travels
// with each prompt.
func (s *Suggester) Suggest(ctx context.Context, r *resume.Resume, a *analysis.Analysis) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("resume record is required")
	}
	if a == nil {
		return nil, fmt.Errorf("analysis is required")
	}

	resumeJSON, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal resume payload: %w", err)
	}
	analysisJSON, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal analysis payload: %w", err)
	}

	prompt := buildPrompt(string(resumeJSON), string(analysisJSON))

	cacheName := ""
	if cacher, ok := s.generator.(resumeCacher); ok && r.ID != "" {
		name, err := cacher.EnsureResumeCache(ctx, r.ID, r.Filename, string(resumeJSON))
		if err != nil {
			s.logger.Warn("resume cache unavailable, sending full prompt", zap.Error(err))
		} else {
			cacheName = name
			prompt = buildPrompt("(cached)", string(analysisJSON))
		}
	}

	s.logger.Debug("gemini suggestion request",
		zap.String("record_id", r.ID),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", textutil.TruncateForLog(prompt, s.maxLogLen)),
	)

	raw, err := s.generate(ctx, prompt, cacheName)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("gemini suggestion response",
		zap.String("record_id", r.ID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", textutil.TruncateForLog(raw, s.maxLogLen)),
	)

	return parseResponse(raw)
}

// generate retries transient generator failures with a fixed delay.
func (s *Suggester) generate(ctx context.Context, prompt, cacheName string) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			s.logger.Debug("retrying gemini request",
				zap.Int("attempt", attempt),
				zap.Error(lastErr),
			)
			if err := waitFor(ctx, retryDelay); err != nil {
				return "", err
			}
		}

		var (
			raw string
			err error
		)
		if cacher, ok := s.generator.(resumeCacher); ok && cacheName != "" {
			raw, err = cacher.GenerateContentWithCache(ctx, prompt, cacheName)
		} else {
			raw, err = s.generator.GenerateContent(ctx, prompt)
		}
		if err == nil {
			return raw, nil
		}
		lastErr = err
	}

	return "", fmt.Errorf("gemini request failed after %d attempts: %w", s.maxRetries+1, lastErr)
}

func buildPrompt(resumeJSON, analysisJSON string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Resume:\n{{RESUME_JSON}}\n\nAnalysis:\n{{ANALYSIS_JSON}}\n\nJSON Response:"
	}
	prompt := strings.ReplaceAll(template, "{{RESUME_JSON}}", resumeJSON)
	return strings.ReplaceAll(prompt, "{{ANALYSIS_JSON}}", analysisJSON)
}

func parseResponse(raw string) ([]string, error) {
	cleaned := extractJSON(raw)

	var data struct {
		Suggestions []any `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	suggestions := make([]string, 0, len(data.Suggestions))
	for _, item := range data.Suggestions {
		if s := coerceString(item); s != "" {
			suggestions = append(suggestions, s)
		}
	}
	if len(suggestions) == 0 {
		return nil, fmt.Errorf("gemini response contained no suggestions")
	}

	return suggestions, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		if v == nil {
			return ""
		}
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}

// waitFor is an interruptible sleep.
var sleep = time.Sleep

func waitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		sleep(d)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}
