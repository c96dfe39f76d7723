package styles

import "github.com/bnema/mosaic/internal/application/port"

// Nerd Font glyphs. Terminals without a Nerd Font show replacement boxes.
const (
	IconBuilding = "\uf1ad"
	IconChart    = "\uf201"
	IconPane     = "\uf0db"
	IconExpand   = "\uf065"

	IconCheck   = "\uf00c"
	IconX       = "\uf00d"
	IconWarning = "\uf071"
	IconInfo    = "\uf05a"

	IconConfig = "\ue615"
	IconFolder = "\uf07b"

	IconVersion   = "\uf02b"
	IconGitBranch = "\ue725"
	IconCalendar  = "\uf073"
	IconGithub    = "\uf09b"
	IconHeart     = "\uf004"
	IconGo        = "\ue627"
)

// NotificationIcon returns the glyph shown in front of a notice.
func NotificationIcon(notifType port.NotificationType) string {
	switch notifType {
	case port.NotificationSuccess:
		return IconCheck
	case port.NotificationError:
		return IconX
	case port.NotificationWarning:
		return IconWarning
	default:
		return IconInfo
	}
}
