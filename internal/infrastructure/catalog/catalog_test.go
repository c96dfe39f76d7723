package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mosaic/internal/application/port"
)

func TestNewBuiltin_HasDefaultTickers(t *testing.T) {
	c, err := NewBuiltin()
	require.NoError(t, err)

	ctx := context.Background()
	for _, ticker := range []string{"AAPL", "NVDA", "MSFT", "GOOGL", "AMZN", "TSLA"} {
		company, err := c.Lookup(ctx, ticker)
		require.NoError(t, err, ticker)
		assert.Equal(t, ticker, company.Ticker)
		assert.NotEmpty(t, company.Name)
	}
}

func TestCatalog_LookupIsCaseInsensitive(t *testing.T) {
	c, err := NewBuiltin()
	require.NoError(t, err)

	company, err := c.Lookup(context.Background(), " nvda")
	require.NoError(t, err)
	assert.Equal(t, "NVIDIA Corporation", company.Name)

	_, err = c.Lookup(context.Background(), "ZZZZ")
	require.ErrorIs(t, err, port.ErrContentNotFound)
}

func TestCatalog_ListIsSortedCopy(t *testing.T) {
	c, err := Parse(strings.NewReader(`[{"ticker":"msft","name":"Microsoft"},{"ticker":"AAPL","name":"Apple"}]`))
	require.NoError(t, err)

	list, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "AAPL", list[0].Ticker)
	assert.Equal(t, "MSFT", list[1].Ticker)

	list[0].Name = "changed"
	again, _ := c.List(context.Background())
	assert.Equal(t, "Apple", again[0].Name)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse(strings.NewReader(`not json`))
	require.Error(t, err)

	_, err = Parse(strings.NewReader(`[{"name":"No Ticker"}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index 0")
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	builtin, err := Open(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 6, builtin.Len())

	path := filepath.Join(t.TempDir(), "companies.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"ticker":"IBM","name":"IBM"}]`), 0o600))

	custom, err := Open(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, custom.Len())

	_, err = Open(ctx, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
