package port

//go:generate mockgen -source=content.go -destination=mocks/mock_content.go -package=mocks

import (
	"context"
	"errors"

	"github.com/bnema/mosaic/internal/domain/entity"
)

// ErrContentNotFound is returned when no record exists for a content key.
var ErrContentNotFound = errors.New("content not found")

// ContentLookup resolves the content key bound to a window into the record
// the window displays. The layout engine only passes keys through.
type ContentLookup interface {
	// Lookup returns the record for key or ErrContentNotFound.
	Lookup(ctx context.Context, key string) (*entity.Company, error)

	// List returns every known record, ordered by key.
	List(ctx context.Context) ([]entity.Company, error)
}
