//go:build ocr

// Package ocr provides OCR (Optical Character Recognition) capabilities
// for turning rendered page images into text.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract and the language data to be installed on the system. On
// Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-deu
//
// On macOS:
//
//	brew install tesseract tesseract-lang
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client configured for scanned tables: the given
// languages (German plus English when none are given) and a single
// uniform block of text as the page segmentation mode.
// The client should be closed when no longer needed to release resources.
func New(languages ...string) (*Client, error) {
	client := gosseract.NewClient()

	if len(languages) == 0 {
		languages = []string{"deu", "eng"}
	}
	if err := client.SetLanguage(languages...); err != nil {
		client.Close()
		return nil, fmt.Errorf("set languages %v: %w", languages, err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		client.Close()
		return nil, fmt.Errorf("set page segmentation mode: %w", err)
	}

	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeImage performs OCR on image data (PNG, TIFF, JPEG, etc.).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// SetLanguage sets the language(s) for OCR recognition, overriding the
// ones given to New.
func (c *Client) SetLanguage(languages ...string) error {
	return c.client.SetLanguage(languages...)
}

// SetPageSegMode sets the page segmentation mode.
// This affects how Tesseract analyzes the page layout.
// See gosseract.PageSegMode constants for available modes.
func (c *Client) SetPageSegMode(mode gosseract.PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}

// SetDPI passes the effective render resolution to Tesseract, which uses
// it for scaling and layout heuristics.
func (c *Client) SetDPI(dpi int) error {
	return c.client.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(dpi))
}
