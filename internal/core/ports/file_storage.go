package ports

import (
	"context"
	"io"
)

// FileStorage persists uploaded delivery-proof photos and returns an opaque
// reference usable as an order's deliveryPhoto. The core never sees raw
// bytes; the HTTP layer saves the upload first and passes the reference in.
type FileStorage interface {
	// Save stores the content under a generated name derived from
	// originalName's extension and returns the stored reference.
	Save(ctx context.Context, originalName string, content io.Reader) (string, error)

	// Remove deletes a stored file by its reference. Removing a missing
	// file is not an error.
	Remove(ctx context.Context, reference string) error
}
