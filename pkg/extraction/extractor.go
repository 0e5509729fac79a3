package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/artem13815/resumeflow/pkg/llm"
	"github.com/artem13815/resumeflow/pkg/logging"
)

const defaultMaxChars = 12000

// outputSchema is deliberately loose: a non-empty object whose list-valued sections, when present,
// are arrays of objects. Absent fields are the normalizer's business.
var outputSchema = jsonschema.MustCompileString("model-output.json", `{
	"type": "object",
	"minProperties": 1,
	"patternProperties": {
		"^(?i)(experience|education)$": {
			"type": ["array", "null"],
			"items": {"type": "object"}
		}
	}
}`)

// Extractor is the Structured-Field Extractor: free text in, RawExtractionResult out.
type Extractor struct {
	llm      llm.ChatModel
	maxChars int
	log      *logging.Logger
}

func NewExtractor(model llm.ChatModel, maxChars int, log *logging.Logger) *Extractor {
	if maxChars <= 0 {
		maxChars = defaultMaxChars
	}
	return &Extractor{llm: model, maxChars: maxChars, log: logging.OrNop(log).Named("extraction")}
}

// Extract runs the resume instruction over text.
func (e *Extractor) Extract(ctx context.Context, text string) (Raw, error) {
	return e.ExtractWith(ctx, ResumePrompt, text)
}

// ExtractWith runs an arbitrary instruction over text. Completion failures wrap ErrCompletionFailed;
// unusable content yields a *MalformedOutputError.
func (e *Extractor) ExtractWith(ctx context.Context, p Prompt, text string) (Raw, error) {
	rid := uuid.NewString()
	start := time.Now()

	text = strings.TrimSpace(text)
	excerpted := false
	if utf8.RuneCountInString(text) > e.maxChars {
		text = truncateRunes(text, e.maxChars)
		excerpted = true
	}
	e.log.Info("extraction.start", "req_id", rid, "prompt", p.Name, "text_len", len(text), "excerpted", excerpted)

	content, err := e.llm.Ask(ctx, p.System, p.userMessage(text))
	if err != nil {
		e.log.Error("extraction.completion_error", "req_id", rid, "err", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return Raw{}, fmt.Errorf("%w: %w", ErrCompletionFailed, err)
	}

	raw, err := parseOutput(content)
	if err != nil {
		e.log.Warn("extraction.malformed", "req_id", rid, "err", err, "content_len", len(content),
			"elapsed_ms", time.Since(start).Milliseconds())
		return Raw{}, err
	}
	e.log.Info("extraction.done", "req_id", rid, "elapsed_ms", time.Since(start).Milliseconds())
	return raw, nil
}

// parseOutput accepts a bare JSON object, one wrapped in markdown fences, or one embedded in prose.
func parseOutput(content string) (Raw, error) {
	cleaned := stripMarkdownCodeFences(strings.TrimSpace(content))
	if cleaned == "" {
		return Raw{}, &MalformedOutputError{Raw: content, Reason: "empty completion"}
	}
	if !json.Valid([]byte(cleaned)) {
		i := strings.Index(cleaned, "{")
		j := strings.LastIndex(cleaned, "}")
		if i < 0 || j <= i || !json.Valid([]byte(cleaned[i:j+1])) {
			return Raw{}, &MalformedOutputError{Raw: content, Reason: "completion is not valid JSON"}
		}
		cleaned = cleaned[i : j+1]
	}

	var v any
	if err := json.Unmarshal([]byte(cleaned), &v); err != nil {
		return Raw{}, &MalformedOutputError{Raw: content, Reason: err.Error()}
	}
	if err := outputSchema.Validate(v); err != nil {
		return Raw{}, &MalformedOutputError{Raw: content, Reason: "unexpected shape: " + err.Error()}
	}
	return NewRaw([]byte(cleaned)), nil
}

func stripMarkdownCodeFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// drop the language tag line, e.g. ```json
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// truncateRunes keeps the first n characters of s.
func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
