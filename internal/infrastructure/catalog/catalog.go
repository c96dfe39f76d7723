// Package catalog provides a JSON-backed company lookup table.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/bnema/mosaic/internal/application/port"
	"github.com/bnema/mosaic/internal/domain/entity"
	"github.com/bnema/mosaic/internal/logging"
)

//go:embed companies.json
var builtinCompanies []byte

// Catalog is an in-memory lookup table keyed by normalized ticker.
// It is read-only after construction and safe for concurrent use.
type Catalog struct {
	byTicker map[string]entity.Company
	sorted   []entity.Company
}

var _ port.ContentLookup = (*Catalog)(nil)

// NewBuiltin returns the catalog compiled into the binary.
func NewBuiltin() (*Catalog, error) {
	return Parse(bytes.NewReader(builtinCompanies))
}

// Open loads a catalog from a JSON file holding an array of companies.
// An empty path selects the builtin catalog.
func Open(ctx context.Context, path string) (*Catalog, error) {
	if path == "" {
		return NewBuiltin()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logging.FromContext(ctx).Warn().Err(cerr).Str("path", path).Msg("failed to close catalog file")
		}
	}()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	logging.FromContext(ctx).Debug().Str("path", path).Int("companies", len(c.sorted)).Msg("catalog loaded")
	return c, nil
}

// Parse decodes a JSON array of companies. Entries without a ticker are
// rejected; a later duplicate ticker replaces an earlier one.
func Parse(r io.Reader) (*Catalog, error) {
	var companies []entity.Company
	if err := json.NewDecoder(r).Decode(&companies); err != nil {
		return nil, fmt.Errorf("decode companies: %w", err)
	}

	byTicker := make(map[string]entity.Company, len(companies))
	for i, c := range companies {
		ticker := entity.NormalizeTicker(c.Ticker)
		if ticker == "" {
			return nil, fmt.Errorf("company at index %d has no ticker", i)
		}
		c.Ticker = ticker
		byTicker[ticker] = c
	}

	sorted := make([]entity.Company, 0, len(byTicker))
	for _, c := range byTicker {
		sorted = append(sorted, c)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Ticker < sorted[j].Ticker })

	return &Catalog{byTicker: byTicker, sorted: sorted}, nil
}

// Lookup implements port.ContentLookup.
func (c *Catalog) Lookup(_ context.Context, key string) (*entity.Company, error) {
	company, ok := c.byTicker[entity.NormalizeTicker(key)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", port.ErrContentNotFound, key)
	}
	return &company, nil
}

// List implements port.ContentLookup.
func (c *Catalog) List(_ context.Context) ([]entity.Company, error) {
	out := make([]entity.Company, len(c.sorted))
	copy(out, c.sorted)
	return out, nil
}

// Len returns the number of companies.
func (c *Catalog) Len() int {
	return len(c.sorted)
}
