// Package gemini provides a skills extractor backed by the Google Gemini
// API, with a local fallback for when the remote call fails.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/fwojciec/resumeparse"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const defaultModel = "gemini-3-flash-preview"

// Ensure SkillsExtractor implements resumeparse.FieldExtractor at compile time.
var _ resumeparse.FieldExtractor = (*SkillsExtractor)(nil)

// SkillsExtractor extracts technical skills from resume text using Gemini.
// Remote failures are absorbed: the extractor logs a warning and delegates
// to the fallback extractor instead of failing the pipeline. This trades
// extraction fidelity for availability on the one field that depends on an
// external API.
type SkillsExtractor struct {
	client   *genai.Client
	fallback resumeparse.FieldExtractor
	logger   *slog.Logger

	// Model is the Gemini model identifier. Defaults to gemini-3-flash-preview.
	Model string

	// Timeout bounds each remote call. Zero means no bound; a timeout is
	// treated like any other remote failure and triggers the fallback.
	Timeout time.Duration

	// Limiter, if set, bounds the request rate to the Gemini API.
	Limiter *rate.Limiter
}

// NewClient creates a Gemini API client. An explicit apiKey takes
// precedence over the GEMINI_API_KEY environment variable; if neither is
// set, construction fails with ENOCREDENTIAL.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, resumeparse.Errorf(resumeparse.ENOCREDENTIAL,
			"API key required: pass it explicitly or set GEMINI_API_KEY")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return client, nil
}

// NewSkillsExtractor creates a SkillsExtractor. The fallback extractor is
// used whenever the remote call fails; a nil logger defaults to
// slog.Default.
func NewSkillsExtractor(client *genai.Client, fallback resumeparse.FieldExtractor, logger *slog.Logger) *SkillsExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &SkillsExtractor{
		client:   client,
		fallback: fallback,
		logger:   logger,
		Model:    defaultModel,
	}
}

// Extract returns the technical skills mentioned in the text, in the order
// the model reports them. Empty input returns an empty sequence without a
// remote call. Remote failures degrade to the fallback extractor and never
// surface as errors.
func (e *SkillsExtractor) Extract(ctx context.Context, text string) (resumeparse.FieldValue, error) {
	if strings.TrimSpace(text) == "" {
		return resumeparse.ListValue([]string{}), nil
	}

	raw, err := e.generate(ctx, text)
	if err != nil {
		e.logger.Warn("gemini skills extraction failed, using fallback", "err", err)
		if e.fallback == nil {
			return resumeparse.ListValue([]string{}), nil
		}
		return e.fallback.Extract(ctx, text)
	}

	return resumeparse.ListValue(ParseSkills(raw)), nil
}

// generate performs the remote completion call and returns its raw text.
func (e *SkillsExtractor) generate(ctx context.Context, text string) (string, error) {
	if e.client == nil {
		return "", resumeparse.Errorf(resumeparse.EINTERNAL, "gemini client not configured")
	}

	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	if e.Limiter != nil {
		if err := e.Limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	model := e.Model
	if model == "" {
		model = defaultModel
	}

	result, err := e.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildPrompt(text)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil || result.Text() == "" {
		return "", resumeparse.Errorf(resumeparse.EINTERNAL, "gemini returned empty result")
	}
	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for skill extraction calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a resume parser. You extract technical skills from resume text and respond with nothing but a valid JSON array of strings.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildPrompt builds the user prompt embedding the resume text.
func BuildPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("Extract all technical skills from the following resume text.\n\n")
	sb.WriteString("Instructions:\n")
	sb.WriteString("1. Identify programming languages, frameworks, tools, technologies, and technical methodologies\n")
	sb.WriteString("2. Return ONLY a valid JSON array of skills as strings\n")
	sb.WriteString("3. Each skill should be a concise term or phrase\n")
	sb.WriteString("4. Remove duplicates and normalize similar terms\n")
	sb.WriteString("5. Include only technical skills, not soft skills\n")
	sb.WriteString("6. Do not include any explanation, just the JSON array\n\n")
	sb.WriteString("Resume Text:\n")
	sb.WriteString(text)
	sb.WriteString("\n\nReturn format (example):\n")
	sb.WriteString(`["Python", "Machine Learning", "TensorFlow", "Docker", "AWS", "SQL"]`)
	sb.WriteString("\n\nJSON Array of Skills:")
	return sb.String()
}

// arrayPattern locates the first bracketed JSON-array substring in a model
// response, allowing embedded newlines.
var arrayPattern = regexp.MustCompile(`(?s)\[.*?\]`)

// ParseSkills parses a model response into a list of skills. It locates the
// first [...] substring and decodes it as a JSON array, keeping non-empty
// entries trimmed of surrounding whitespace. Any parse failure yields an
// empty list rather than an error.
func ParseSkills(response string) []string {
	match := arrayPattern.FindString(response)
	if match == "" {
		return []string{}
	}

	var entries []any
	if err := json.Unmarshal([]byte(match), &entries); err != nil {
		return []string{}
	}

	skills := []string{}
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		s := strings.TrimSpace(fmt.Sprint(entry))
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}
	return skills
}
