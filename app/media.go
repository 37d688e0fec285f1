package app

import (
	"context"

	"github.com/mrred-labs/redterm/domain"
)

// MediaUploader transports a validated upload ticket to storage and yields
// a handle to attach to a post. Progress is reported through the callback
// with values in 0..100; the uploader must not report 100 before it is
// about to return successfully.
type MediaUploader interface {
	Upload(ctx context.Context, ticket domain.UploadTicket, progress func(int)) (MediaHandle, error)
}
