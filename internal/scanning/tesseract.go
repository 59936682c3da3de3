package scanning

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract implements the Recognizer interface with a local Tesseract
// engine. No network, no API key; recognition quality depends on the
// installed traineddata. A Tesseract instance is not safe for concurrent use.
type Tesseract struct {
	client *gosseract.Client
}

// NewTesseract creates a new Tesseract Recognizer instance. With no
// languages given, the engine's default (eng) applies.
func NewTesseract(languages ...string) (*Tesseract, error) {
	client := gosseract.NewClient()
	if len(languages) > 0 {
		if err := client.SetLanguage(languages...); err != nil {
			client.Close()
			return nil, fmt.Errorf("setting tesseract languages: %w", err)
		}
	}

	return &Tesseract{client: client}, nil
}

// RecognizeText runs Tesseract over a receipt image
func (t *Tesseract) RecognizeText(imageData []byte, contentType string) (string, error) {
	// Prepare image data (convert to PNG if needed)
	finalImageData, _, _, err := prepareImageData(imageData, contentType)
	if err != nil {
		return "", err
	}

	if err := t.client.SetImageFromBytes(finalImageData); err != nil {
		return "", fmt.Errorf("loading image: %w", err)
	}

	text, err := t.client.Text()
	if err != nil {
		return "", fmt.Errorf("running tesseract: %w", err)
	}

	return text, nil
}

// Close releases the Tesseract client
func (t *Tesseract) Close() error {
	return t.client.Close()
}
