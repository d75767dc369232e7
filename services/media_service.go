package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MediaService fetches exercise media so the frontend never talks to the
// origin directly. Bytes are passed through opaque, with the origin's
// content type.
type MediaService struct {
	client *http.Client
}

func NewMediaService() *MediaService {
	return &MediaService{client: &http.Client{Timeout: 10 * time.Second}}
}

// Fetch downloads url and returns the raw bytes plus content type
// (image/gif when the origin does not say).
func (s *MediaService) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("%w: create media request: %v", ErrUpstream, err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: fetch media: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("%w: media origin returned %d", ErrUpstream, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: read media body: %v", ErrUpstream, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/gif"
	}
	return data, contentType, nil
}
