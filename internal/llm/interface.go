package llm

import "context"

// Provider is the text-generation backend used by the task pipeline, the
// action-item expander, and image ingestion.
type Provider interface {
	// Complete sends the instruction as the system directive and the
	// transcript as user content, and returns the generated text.
	Complete(ctx context.Context, model, instruction, transcript string) (string, error)

	// DescribeImage transcribes and describes an uploaded image.
	DescribeImage(ctx context.Context, model string, data []byte, mimeType string) (string, error)
}
