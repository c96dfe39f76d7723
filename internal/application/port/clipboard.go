package port

import "context"

//go:generate mockgen -source=clipboard.go -destination=mocks/mock_clipboard.go -package=mocks

// Clipboard copies text out of the dashboard.
type Clipboard interface {
	// WriteText copies text to the clipboard.
	WriteText(ctx context.Context, text string) error
}
