package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/mosaic/internal/application/port"
	"github.com/bnema/mosaic/internal/domain/entity"
	"github.com/bnema/mosaic/internal/logging"
)

// LookupContentUseCase resolves window content keys through a ContentLookup.
type LookupContentUseCase struct {
	lookup port.ContentLookup
}

// NewLookupContentUseCase creates a new content lookup use case.
func NewLookupContentUseCase(lookup port.ContentLookup) *LookupContentUseCase {
	return &LookupContentUseCase{lookup: lookup}
}

// Describe returns the record for key. A missing record is reported with
// port.ErrContentNotFound so callers can render a placeholder.
func (uc *LookupContentUseCase) Describe(ctx context.Context, key string) (*entity.Company, error) {
	log := logging.FromContext(ctx)

	ticker := entity.NormalizeTicker(key)
	if ticker == "" {
		return nil, ErrEmptyContentKey
	}
	company, err := uc.lookup.Lookup(ctx, ticker)
	if err != nil {
		if errors.Is(err, port.ErrContentNotFound) {
			log.Debug().Str("content", ticker).Msg("no record for content key")
		}
		return nil, fmt.Errorf("lookup %s: %w", ticker, err)
	}
	return company, nil
}

// Choices returns every selectable record.
func (uc *LookupContentUseCase) Choices(ctx context.Context) ([]entity.Company, error) {
	companies, err := uc.lookup.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	return companies, nil
}

// Cycle returns the key delta steps away from current in the choice list,
// wrapping around. An unknown current key starts from the first choice.
func (uc *LookupContentUseCase) Cycle(ctx context.Context, current string, delta int) (string, error) {
	choices, err := uc.Choices(ctx)
	if err != nil {
		return "", err
	}
	if len(choices) == 0 {
		return "", port.ErrContentNotFound
	}

	current = entity.NormalizeTicker(current)
	idx := -1
	for i, c := range choices {
		if entity.NormalizeTicker(c.Ticker) == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return choices[0].Ticker, nil
	}

	n := len(choices)
	next := ((idx+delta)%n + n) % n
	return choices[next].Ticker, nil
}
