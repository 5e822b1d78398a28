package support

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/Mahhmanee/Sup/internal/i18n"
)

// UserMessage is an inbound message from an end-user chat.
type UserMessage struct {
	UserID    int64
	ChatID    int64
	MessageID int
	Username  string // empty if the account has no @username
	Text      string
}

// ManagerMessage is an inbound message from the managers channel.
type ManagerMessage struct {
	ChatID    int64
	MessageID int
	ReplyTo   int // replied-to message id, 0 if not a reply
	Text      string
}

// Callback is an inline-button press. Data uses the prefix scheme
// "lang_<code>" for language selection and "close_<ticketId>" for
// manager-initiated closure.
type Callback struct {
	ID        string
	UserID    int64
	ChatID    int64
	MessageID int
	Data      string
}

// Engine routes inbound events across the session store, ticket
// registry and message-link index, and issues transport calls. All
// four structures are owned here and mutated only under mu, so one
// event runs to completion before the next (the serialization
// boundary the invariants rely on).
type Engine struct {
	mu sync.Mutex

	transport    Transport
	managersChat int64
	sessions     *SessionStore
	registry     *TicketRegistry
	links        *MessageLinkIndex
}

func NewEngine(transport Transport, managersChat int64, minTicketID, maxTicketID int) *Engine {
	return &Engine{
		transport:    transport,
		managersChat: managersChat,
		sessions:     NewSessionStore(),
		registry:     NewTicketRegistry(minTicketID, maxTicketID),
		links:        NewMessageLinkIndex(),
	}
}

// HandleStart processes /start: ensure a session exists and prompt
// language selection, whatever state the user was in.
func (e *Engine) HandleStart(m UserMessage) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.sessions.GetOrCreate(m.UserID)
	_, err := e.transport.SendMessage(m.ChatID, i18n.Welcome(i18n.DefaultLang), Markup{Kind: MarkupLanguageChoice})
	return err
}

// HandleUserMessage processes a non-command text message from a user
// chat. Dispatch order: no language → close label → category label →
// active-ticket forward → pending-category finalize → menu prompt.
func (e *Engine) HandleUserMessage(m UserMessage) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	sess := e.sessions.GetOrCreate(m.UserID)
	if sess.Lang == "" {
		_, err := e.transport.SendMessage(m.ChatID, i18n.Welcome(i18n.DefaultLang), Markup{Kind: MarkupLanguageChoice})
		return err
	}
	lang := sess.Lang

	if m.Text == i18n.CloseTicket(lang) {
		if ticketID, ok := e.registry.ActiveTicket(m.UserID); ok {
			return e.closeTicket(ticketID, lang)
		}
		_, err := e.transport.SendMessage(m.ChatID, i18n.NoActiveTicket(lang), Markup{Kind: MarkupCategoryMenu, Lang: lang})
		return err
	}

	// Category labels win over forwarding even with a ticket open;
	// a message that exactly matches a menu button is treated as a
	// (re)selection, matching the reference bot.
	if cat, ok := i18n.CategoryByLabel(lang, m.Text); ok {
		e.sessions.SetPendingCategory(m.UserID, cat)
		_, err := e.transport.SendMessage(m.ChatID, i18n.Describe(lang), Markup{Kind: MarkupNone})
		return err
	}

	if ticketID, ok := e.registry.ActiveTicket(m.UserID); ok {
		if e.registry.Get(ticketID) != nil {
			forwardedID, err := e.transport.ForwardMessage(e.managersChat, m.ChatID, m.MessageID)
			if err != nil {
				return err
			}
			e.registry.AppendLinkedMessage(ticketID, forwardedID)
			e.links.Link(forwardedID, ticketID)
			return nil
		}
	}

	if !sess.HasPending {
		_, err := e.transport.SendMessage(m.ChatID, i18n.Menu(lang), Markup{Kind: MarkupCategoryMenu, Lang: lang})
		return err
	}

	return e.openTicket(m, sess, lang)
}

// openTicket turns the pending-category description message into a new
// ticket. The forward happens first: if it fails no ticket is
// registered. A card-send failure rolls the ticket back so the
// registry never holds a ticket the managers channel cannot see.
func (e *Engine) openTicket(m UserMessage, sess *Session, lang i18n.Lang) error {
	forwardedID, err := e.transport.ForwardMessage(e.managersChat, m.ChatID, m.MessageID)
	if err != nil {
		return err
	}

	t, err := e.registry.Create(m.UserID, sess.PendingCategory, lang)
	if err != nil {
		return fmt.Errorf("create ticket for user %d: %w", m.UserID, err)
	}

	cardID, err := e.transport.SendMessage(e.managersChat, e.infoCard(t, m.Username), Markup{Kind: MarkupManagerClose, TicketID: t.ID})
	if err != nil {
		e.transport.DeleteMessage(e.managersChat, forwardedID) // best effort
		e.registry.Close(t.ID)
		return err
	}

	e.registry.AppendLinkedMessage(t.ID, forwardedID)
	e.registry.AppendLinkedMessage(t.ID, cardID)
	e.links.Link(forwardedID, t.ID)
	e.links.Link(cardID, t.ID)
	e.sessions.ClearPendingCategory(m.UserID)

	_, err = e.transport.SendMessage(m.ChatID, fmt.Sprintf(i18n.TicketCreated(lang), t.ID), Markup{Kind: MarkupCloseTicket, Lang: lang})
	return err
}

// infoCard is the manager-facing summary sent alongside the forwarded
// opening message.
func (e *Engine) infoCard(t *Ticket, username string) string {
	requester := strconv.FormatInt(t.OwnerUserID, 10)
	if username != "" {
		requester = username
	}
	return fmt.Sprintf("🎫 Тикет #%d\n👤 Пользователь: @%s\n📂 Категория: %s\n🌐 Язык: %s",
		t.ID,
		requester,
		i18n.CategoryLabel(t.Lang, t.Category),
		i18n.LanguageName(t.Lang))
}

// HandleManagerMessage routes a managers-channel reply back to the
// ticket owner. Non-replies and replies to unlinked or dead tickets
// are dropped without response, as managers get no error surface.
func (e *Engine) HandleManagerMessage(m ManagerMessage) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if m.ReplyTo == 0 {
		return nil
	}
	ticketID, ok := e.links.Resolve(m.ReplyTo)
	if !ok {
		return nil
	}
	t := e.registry.Get(ticketID)
	if t == nil {
		return nil
	}

	// Manager text passes through verbatim, no localization.
	if _, err := e.transport.SendMessage(t.OwnerUserID, m.Text, Markup{Kind: MarkupNone}); err != nil {
		return err
	}

	// Index the manager's own message too so replies to it keep
	// resolving down the chain.
	e.registry.AppendLinkedMessage(ticketID, m.MessageID)
	e.links.Link(m.MessageID, ticketID)
	return nil
}

// HandleCallback dispatches inline-button presses by data prefix.
// Unrecognized payloads are ignored.
func (e *Engine) HandleCallback(cb Callback) error {
	switch {
	case strings.HasPrefix(cb.Data, "lang_"):
		return e.handleLanguageSelect(cb, strings.TrimPrefix(cb.Data, "lang_"))
	case strings.HasPrefix(cb.Data, "close_"):
		ticketID, err := strconv.Atoi(strings.TrimPrefix(cb.Data, "close_"))
		if err != nil {
			return nil
		}
		return e.handleManagerClose(cb, ticketID)
	}
	return nil
}

func (e *Engine) handleLanguageSelect(cb Callback, code string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !i18n.Valid(code) {
		return nil
	}
	lang := i18n.Lang(code)
	e.sessions.SetLanguage(cb.UserID, lang)

	// Swap the language prompt for the menu text, then deliver the
	// category keyboard to the user's chat.
	if err := e.transport.EditMessage(cb.ChatID, cb.MessageID, i18n.Menu(lang)); err != nil {
		return err
	}
	_, err := e.transport.SendMessage(cb.UserID, i18n.Menu(lang), Markup{Kind: MarkupCategoryMenu, Lang: lang})
	return err
}

func (e *Engine) handleManagerClose(cb Callback, ticketID int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	// The manager supplies no language; closure falls back to the
	// ticket's stored one.
	if err := e.closeTicket(ticketID, ""); err != nil {
		return err
	}
	return e.transport.AnswerCallback(cb.ID, "Тикет закрыт")
}

// closeTicket tears a ticket down: best-effort deletion of every
// linked managers-channel message, index cleanup, owner notification
// if the ticket was still their active one, and registry removal.
// Closing an unknown id is a no-op. Callers hold e.mu.
func (e *Engine) closeTicket(ticketID int, lang i18n.Lang) error {
	t, wasActive := e.registry.Close(ticketID)
	if t == nil {
		return nil
	}
	if lang == "" {
		lang = t.Lang
	}
	if lang == "" {
		lang = i18n.DefaultLang
	}

	for _, msgID := range t.LinkedMessages {
		// Deletion is best effort: the message may already be gone or
		// the bot may lack rights. The index entry goes regardless.
		_ = e.transport.DeleteMessage(e.managersChat, msgID)
	}
	e.links.UnlinkAll(t.LinkedMessages)

	if !wasActive {
		return nil
	}
	_, err := e.transport.SendMessage(t.OwnerUserID, fmt.Sprintf(i18n.TicketClosed(lang), ticketID), Markup{Kind: MarkupCategoryMenu, Lang: lang})
	return err
}
