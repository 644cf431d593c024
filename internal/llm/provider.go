package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const describeImagePrompt = "Transcribe any text visible in this image and describe its content. " +
	"Return plain text suitable for inclusion in a meeting transcript."

// ProviderError wraps a completion backend failure with the model it
// occurred on. Callers never retry; the error is surfaced verbatim.
type ProviderError struct {
	Model string
	Err   error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider (model %s): %v", e.Model, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Complete sends the instruction as system directive and the transcript as
// user content, with temperature 0 for deterministic output.
func (p *implProvider) Complete(ctx context.Context, model, instruction, transcript string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0),
	}
	return p.generate(ctx, model, genai.Text(transcript), config)
}

// DescribeImage sends the image bytes with a fixed transcription prompt.
func (p *implProvider) DescribeImage(ctx context.Context, model string, data []byte, mimeType string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromBytes(data, mimeType),
		genai.NewPartFromText(describeImagePrompt),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	return p.generate(ctx, model, contents, nil)
}

// generate calls Gemini, rotating API keys on 429 / quota errors.
func (p *implProvider) generate(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error) {
	attempts := len(p.apiKeys)
	var lastErr error

	for range attempts {
		key := p.nextKey(false)

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			p.nextKey(true)
			continue
		}

		result, err := client.Models.GenerateContent(ctx, model, contents, config)
		if err != nil {
			if isQuotaError(err) {
				p.logger.Warn(ctx, "API key rate limited, rotating...")
				p.nextKey(true)
				lastErr = err
				continue
			}
			return "", &ProviderError{Model: model, Err: err}
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text.WriteString(part.Text)
				}
			}
			return text.String(), nil
		}

		return "", &ProviderError{Model: model, Err: fmt.Errorf("empty response")}
	}

	return "", &ProviderError{Model: model, Err: fmt.Errorf("all API keys exhausted: %w", lastErr)}
}

func (p *implProvider) nextKey(rotate bool) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if rotate {
		p.currentKey = (p.currentKey + 1) % len(p.apiKeys)
	}
	return p.apiKeys[p.currentKey]
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
