package editor

import (
	"fmt"

	"github.com/samsaffron/mdpad/internal/clipboard"
)

// User-facing messages.
const (
	MsgCopied             = "Text copied to clipboard!"
	MsgCleared            = "Content deleted!"
	MsgLinkInvalid        = "Please enter both URL and link text."
	MsgCopyMarkdownFailed = "Failed to copy Markdown"
	MsgCopyHTMLFailed     = "Failed to copy HTML"
)

// NotifyKind separates transient notices from errors the user must dismiss.
type NotifyKind int

const (
	// NotifyInfo is shown briefly and hides itself.
	NotifyInfo NotifyKind = iota
	// NotifyError blocks until dismissed.
	NotifyError
)

// Notification is a message for the user.
type Notification struct {
	Text string
	Kind NotifyKind
}

// Blocking reports whether the notification needs an explicit dismissal.
func (n Notification) Blocking() bool { return n.Kind == NotifyError }

// Export writes text to w and returns the notification to show. rendered
// selects the HTML failure message.
func Export(w clipboard.Writer, text string, rendered bool) (Notification, error) {
	if err := w.WriteText(text); err != nil {
		if rendered {
			return Notification{Text: MsgCopyHTMLFailed, Kind: NotifyError}, fmt.Errorf("copy html: %w", err)
		}
		return Notification{Text: MsgCopyMarkdownFailed, Kind: NotifyError}, fmt.Errorf("copy markdown: %w", err)
	}
	return Notification{Text: MsgCopied, Kind: NotifyInfo}, nil
}
