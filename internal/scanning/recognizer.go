package scanning

import "strings"

// Recognizer defines the interface for text recognition engines. One page
// image (or a whole document) goes in, the flat recognized text comes out.
type Recognizer interface {
	// RecognizeText returns the text read from an image or PDF
	RecognizeText(imageData []byte, contentType string) (string, error)
	// Close closes the recognizer and releases resources
	Close() error
}

// Stage identifies where in the acquisition pipeline a document currently is.
// The parser downstream is never handed text while the stage is StageError.
type Stage string

const (
	StageLoading     Stage = "loading"
	StageRendering   Stage = "rendering"
	StageRecognizing Stage = "recognizing"
	StageParsing     Stage = "parsing"
	StageDone        Stage = "done"
	StageError       Stage = "error"
)

// Progress receives stage transitions while a document moves through the
// pipeline. page and total are zero outside per-page recognition.
type Progress func(stage Stage, page, total int)

// stripCodeFences removes markdown code fences that vision models wrap their
// transcriptions in despite being told not to.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```text")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
