package scanning

import (
	"fmt"
	"strings"
)

// PageMarker formats the synthetic line inserted between per-page texts when
// a multi-page document is combined into one string.
func PageMarker(n int) string {
	return fmt.Sprintf("[[PAGE %d]]", n)
}

// RecognizeDocument runs the recognizer over a whole document and returns the
// combined text. Multi-page PDFs are rasterized page by page and recognized
// in order; every page after the first is preceded by a page marker line.
// Stage transitions are reported through progress, which may be nil.
func RecognizeDocument(r Recognizer, data []byte, contentType string, progress Progress) (string, error) {
	notify := func(stage Stage, page, total int) {
		if progress != nil {
			progress(stage, page, total)
		}
	}

	notify(StageLoading, 0, 0)

	mimeType := strings.ToLower(strings.TrimSpace(contentType))
	if mimeType != "application/pdf" {
		notify(StageRecognizing, 1, 1)
		text, err := r.RecognizeText(data, contentType)
		if err != nil {
			notify(StageError, 0, 0)
			return "", fmt.Errorf("recognizing document: %w", err)
		}
		return text, nil
	}

	notify(StageRendering, 0, 0)
	pages, err := pdfToImages(data)
	if err != nil {
		notify(StageError, 0, 0)
		return "", fmt.Errorf("rendering pdf: %w", err)
	}

	var combined strings.Builder
	for i, page := range pages {
		notify(StageRecognizing, i+1, len(pages))
		text, err := r.RecognizeText(page, "image/png")
		if err != nil {
			notify(StageError, 0, 0)
			return "", fmt.Errorf("recognizing page %d: %w", i+1, err)
		}
		if i > 0 {
			combined.WriteString("\n" + PageMarker(i+1) + "\n")
		}
		combined.WriteString(text)
	}

	return combined.String(), nil
}
