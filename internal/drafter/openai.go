package drafter

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

// OpenAIDrafter drafts questions by calling an OpenAI-compatible chat
// endpoint (Ollama, LM Studio, vLLM, etc.).
type OpenAIDrafter struct {
	url    string       // e.g. "http://localhost:1234"
	model  string       // e.g. "qwen3-8b"
	client *http.Client // reused across calls
}

// Compile-time check: *OpenAIDrafter satisfies the Drafter interface.
var _ Drafter = (*OpenAIDrafter)(nil)

// DraftError is returned when drafting fails so the caller can tell a bad
// model answer from an unreachable model.
type DraftError struct {
	Reason  string
	Wrapped error
}

func (e *DraftError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("drafting failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("drafting failed: %s", e.Reason)
}

func (e *DraftError) Unwrap() error {
	return e.Wrapped
}

// NewOpenAIDrafter creates a drafter that calls the given LLM endpoint.
func NewOpenAIDrafter(url, model string) *OpenAIDrafter {
	return &OpenAIDrafter{
		url:   strings.TrimRight(url, "/"),
		model: model,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

const maxRetries = 2

// Draft asks the model for one question. It retries once when the model
// answers with something that is not the expected JSON object.
func (d *OpenAIDrafter) Draft(ctx context.Context, req Request) (*Draft, error) {
	prompt := buildPrompt(req)

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, &DraftError{Reason: "cancelled", Wrapped: err}
		}

		content, err := d.chat(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}

		obj := firstObject(content)
		if obj == "" {
			lastErr = &DraftError{Reason: "no JSON object in model reply"}
			continue
		}

		var draft Draft
		if err := json.Unmarshal([]byte(obj), &draft); err != nil {
			lastErr = &DraftError{Reason: "reply is not a question object", Wrapped: err}
			continue
		}
		draft.Question = strings.TrimSpace(draft.Question)
		draft.Hint = strings.TrimSpace(draft.Hint)
		if draft.Question == "" {
			lastErr = &DraftError{Reason: "model drafted an empty question"}
			continue
		}
		return &draft, nil
	}

	return nil, &DraftError{
		Reason:  fmt.Sprintf("failed after %d attempts", maxRetries),
		Wrapped: lastErr,
	}
}

// ============================================================================
// Chat completion
// ============================================================================

const systemPrompt = "You write exam practice questions and answer with a single JSON object."

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// chat posts the question prompt and returns the first choice's text.
func (d *OpenAIDrafter) chat(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: d.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return "", fmt.Errorf("encoding chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("drafting model unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("drafting model returned status %d", resp.StatusCode)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding chat response: %w", err)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", errors.New("drafting model returned no text")
	}
	return out.Choices[0].Message.Content, nil
}

// firstObject returns the first complete JSON object embedded in the model's
// reply, skipping prose and markdown fences around it. It returns "" when
// there is none.
func firstObject(s string) string {
	for i := strings.IndexByte(s, '{'); i >= 0; {
		var raw json.RawMessage
		if err := json.NewDecoder(strings.NewReader(s[i:])).Decode(&raw); err == nil {
			return string(raw)
		}
		next := strings.IndexByte(s[i+1:], '{')
		if next < 0 {
			break
		}
		i += next + 1
	}
	return ""
}

// ============================================================================
// Prompt
// ============================================================================

// buildPrompt keeps the instructions short and ends with the JSON schema so
// small models see it last.
func buildPrompt(req Request) string {
	focus := req.Focus
	if focus == "" {
		focus = "any concept covered by the reference papers"
	}

	difficulty := req.Difficulty
	if difficulty == "" || difficulty == "mixed" {
		difficulty = "moderate"
	}

	var refs strings.Builder
	for i, r := range req.References {
		fmt.Fprintf(&refs, "%d. %s\n", i+1, r)
	}
	if refs.Len() == 0 {
		refs.WriteString("(none)\n")
	}

	return fmt.Sprintf(`/no_think
You are writing one practice question for a %s mock test (subject: %s).

FOCUS: %s
DIFFICULTY: %s

PREVIOUS-YEAR PAPERS ON THIS FOCUS:
%s
Write a new question in the style of these papers. Do not copy them.

Respond with ONLY this JSON, no explanation, no markdown:
{"question": "question text", "hint": "one-line hint"}`,
		strings.ToUpper(req.ExamType), req.Subject, focus, difficulty, refs.String())
}
