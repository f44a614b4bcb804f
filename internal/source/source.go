// Package source fetches remote documents for one-shot conversions.
package source

import (
	"context"
	"io"
	"net/http"

	"github.com/samber/oops"
	"resty.dev/v3"
)

// Remote documents larger than this are refused.
const maxDocumentBytes = 10 << 20

// Fetch downloads the document at rawURL.
func Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	client := resty.New()
	defer func() {
		_ = client.Close()
	}()

	response, err := client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return nil, oops.
			Code("FETCH_FAILED").
			With("url", rawURL).
			Wrapf(err, "fetching remote document")
	}

	if response.StatusCode() < http.StatusOK || response.StatusCode() >= http.StatusMultipleChoices {
		return nil, oops.
			Code("FETCH_FAILED").
			With("url", rawURL).
			With("status", response.StatusCode()).
			Errorf("remote document returned non-success status %d", response.StatusCode())
	}

	content, err := io.ReadAll(io.LimitReader(response.Body, maxDocumentBytes+1))
	if err != nil {
		return nil, oops.
			Code("FETCH_FAILED").
			With("url", rawURL).
			Wrapf(err, "reading response body")
	}

	if len(content) > maxDocumentBytes {
		return nil, oops.
			Code("FETCH_FAILED").
			With("url", rawURL).
			With("limit_bytes", maxDocumentBytes).
			Errorf("remote document exceeds %d bytes", maxDocumentBytes)
	}

	return content, nil
}
