package ports

import "context"

type UploadService interface {
	// Store decodes a base64 data URL, checks its media type against the
	// image allow-list and persists the bytes under a collision-resistant
	// filename. Returns the public URL path of the stored file, or
	// domain.ErrValidation / domain.ErrUnsupportedMediaType /
	// domain.ErrPayloadTooLarge.
	Store(ctx context.Context, fileNameHint, dataURL string) (string, error)
}
