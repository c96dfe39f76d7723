package port

import (
	"context"
	"time"
)

//go:generate mockgen -source=notification.go -destination=mocks/mock_notification.go -package=mocks

// NotificationType selects how a notice is styled.
type NotificationType int

const (
	NotificationInfo NotificationType = iota
	NotificationSuccess
	NotificationError
	NotificationWarning
)

func (t NotificationType) String() string {
	switch t {
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	case NotificationWarning:
		return "warning"
	default:
		return "info"
	}
}

// Notice is one user-facing message, such as a rejected layout action.
type Notice struct {
	Message string
	Type    NotificationType
	// Duration is how long the notice stays visible; zero uses the
	// presenter's default.
	Duration time.Duration
}

// NotificationID identifies a shown notice.
type NotificationID string

// Notification presents notices to the user.
type Notification interface {
	Show(ctx context.Context, notice Notice) NotificationID
	Dismiss(ctx context.Context, id NotificationID)
	Clear(ctx context.Context)
}
