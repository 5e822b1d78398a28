package support

import (
	"fmt"

	"github.com/Mahhmanee/Sup/internal/i18n"
)

// MarkupKind selects which reply affordance accompanies an outgoing
// message. Rendering into actual keyboards is the transport's concern.
type MarkupKind int

const (
	MarkupNone MarkupKind = iota
	MarkupLanguageChoice
	MarkupCategoryMenu
	MarkupCloseTicket
	MarkupManagerClose
)

// Markup describes the reply affordance attached to a message.
type Markup struct {
	Kind     MarkupKind
	Lang     i18n.Lang // for CategoryMenu and CloseTicket
	TicketID int       // for ManagerClose
}

// Transport is the messaging capability the engine consumes. The
// Telegram layer implements it; tests use a fake.
type Transport interface {
	ForwardMessage(targetChat, sourceChat int64, messageID int) (int, error)
	SendMessage(chatID int64, text string, markup Markup) (int, error)
	EditMessage(chatID int64, messageID int, text string) error
	DeleteMessage(chatID int64, messageID int) error
	AnswerCallback(callbackID, text string) error
}

// TransportError wraps a failed transport call with the operation and
// chat it targeted.
type TransportError struct {
	Op     string
	ChatID int64
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s to chat %d: %v", e.Op, e.ChatID, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
