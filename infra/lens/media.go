package lens

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/mrred-labs/redterm/app"
	"github.com/mrred-labs/redterm/domain"
)

// mediaService implements app.MediaUploader with a multipart upload to the
// protocol's storage endpoint.
type mediaService struct {
	client *Client
}

// NewMediaService creates a MediaUploader backed by the protocol API.
func NewMediaService(client *Client) *mediaService {
	return &mediaService{client: client}
}

type uploadResponse struct {
	URI string `json:"uri"`
}

// Upload transmits the ticket's file and returns the stored media handle.
// Reported progress is capped at 99: the value 100 belongs to the caller,
// who sets it only after this call has returned successfully.
func (s *mediaService) Upload(_ context.Context, ticket domain.UploadTicket, progress func(int)) (app.MediaHandle, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", ticket.FileName)
	if err != nil {
		return app.MediaHandle{}, fmt.Errorf("building upload form: %w", err)
	}
	if _, err := io.Copy(part, newProgressReader(ticket.Data, progress)); err != nil {
		return app.MediaHandle{}, fmt.Errorf("buffering file: %w", err)
	}
	if err := w.WriteField("mimeType", string(ticket.Mime)); err != nil {
		return app.MediaHandle{}, fmt.Errorf("building upload form: %w", err)
	}
	if err := w.WriteField("altTag", ticket.AltText); err != nil {
		return app.MediaHandle{}, fmt.Errorf("building upload form: %w", err)
	}
	if err := w.Close(); err != nil {
		return app.MediaHandle{}, fmt.Errorf("building upload form: %w", err)
	}

	data, err := s.client.PostRaw("/v1/media", w.FormDataContentType(), &buf)
	if err != nil {
		return app.MediaHandle{}, fmt.Errorf("uploading media: %w", err)
	}

	var resp uploadResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return app.MediaHandle{}, fmt.Errorf("parsing upload response: %w", err)
	}
	if resp.URI == "" {
		return app.MediaHandle{}, fmt.Errorf("upload response missing uri")
	}

	return app.MediaHandle{
		URI:     resp.URI,
		Mime:    string(ticket.Mime),
		AltText: ticket.AltText,
	}, nil
}

// progressReader reports how much of the payload has been consumed, scaled
// to 0..99.
type progressReader struct {
	r        *bytes.Reader
	total    int
	read     int
	progress func(int)
}

func newProgressReader(data []byte, progress func(int)) *progressReader {
	if progress == nil {
		progress = func(int) {}
	}
	return &progressReader{r: bytes.NewReader(data), total: len(data), progress: progress}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += n
	if p.total > 0 {
		pct := p.read * 99 / p.total
		p.progress(pct)
	}
	return n, err
}
