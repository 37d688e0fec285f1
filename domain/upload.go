package domain

import (
	"strings"

	"github.com/google/uuid"
)

// MimeKind is the closed set of image types the upload pipeline accepts.
type MimeKind string

const (
	MimePNG  MimeKind = "image/png"
	MimeJPEG MimeKind = "image/jpeg"
	MimeGIF  MimeKind = "image/gif"
)

// UploadTicket holds a selected file between selection and hand-off to post
// creation. A ticket survives a failed upload so the user can retry without
// re-selecting the file; it is destroyed on success or cancel.
type UploadTicket struct {
	ID       string
	FileName string
	Data     []byte
	Size     int64
	Mime     MimeKind
	AltText  string
	Progress int // 0..100, monotonically increasing
}

// NewUploadTicket validates a selected file and creates a ticket for it.
// Any file whose declared type is not an image category is rejected before
// the ticket exists.
func NewUploadTicket(name string, data []byte, declaredType string) (UploadTicket, error) {
	if !strings.HasPrefix(declaredType, "image/") {
		return UploadTicket{}, ErrNotAnImage
	}

	mime := MimePNG
	switch declaredType {
	case "image/jpeg", "image/jpg":
		mime = MimeJPEG
	case "image/gif":
		mime = MimeGIF
	}

	return UploadTicket{
		ID:       uuid.NewString(),
		FileName: name,
		Data:     data,
		Size:     int64(len(data)),
		Mime:     mime,
	}, nil
}
