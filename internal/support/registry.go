package support

import (
	"errors"
	"math/rand"
	"time"

	"github.com/Mahhmanee/Sup/internal/i18n"
)

var (
	// ErrActiveTicket is returned by Create when the user already has
	// an open ticket. Callers are expected to check first; the registry
	// rejects defensively.
	ErrActiveTicket = errors.New("user already has an active ticket")

	// ErrIDSpaceExhausted is returned when every id in the configured
	// range belongs to an open ticket.
	ErrIDSpaceExhausted = errors.New("ticket id space exhausted")
)

// Ticket is one tracked support conversation. LinkedMessages holds, in
// order, every managers-channel message id associated with the ticket:
// the forwarded opening message, the info card, and all later traffic.
type Ticket struct {
	ID             int
	OwnerUserID    int64
	Category       i18n.Category
	Lang           i18n.Lang // snapshot at creation, used for the closure notice
	LinkedMessages []int
}

// randomRolls bounds the random allocation attempts before falling
// back to a linear scan, so allocation terminates even when a single
// free slot remains.
const randomRolls = 32

// TicketRegistry owns the set of open tickets and the
// user -> active-ticket index. A ticket exists here iff it is open.
// Not safe for concurrent use on its own; the engine serializes access.
type TicketRegistry struct {
	minID, maxID int
	rng          *rand.Rand
	tickets      map[int]*Ticket
	activeByUser map[int64]int
}

// NewTicketRegistry creates a registry allocating ids from the
// inclusive range [minID, maxID].
func NewTicketRegistry(minID, maxID int) *TicketRegistry {
	return &TicketRegistry{
		minID:        minID,
		maxID:        maxID,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		tickets:      make(map[int]*Ticket),
		activeByUser: make(map[int64]int),
	}
}

// generateUniqueID picks a random free id, re-rolling on collision.
// After randomRolls misses it scans the range so a nearly-full space
// still yields the remaining slot.
func (r *TicketRegistry) generateUniqueID() (int, error) {
	space := r.maxID - r.minID + 1
	if len(r.tickets) >= space {
		return 0, ErrIDSpaceExhausted
	}
	for i := 0; i < randomRolls; i++ {
		id := r.minID + r.rng.Intn(space)
		if _, taken := r.tickets[id]; !taken {
			return id, nil
		}
	}
	for id := r.minID; id <= r.maxID; id++ {
		if _, taken := r.tickets[id]; !taken {
			return id, nil
		}
	}
	return 0, ErrIDSpaceExhausted
}

// Create opens a ticket for the user and records it as their active
// one. Fails with ErrActiveTicket if they already have one open.
func (r *TicketRegistry) Create(userID int64, cat i18n.Category, lang i18n.Lang) (*Ticket, error) {
	if _, busy := r.activeByUser[userID]; busy {
		return nil, ErrActiveTicket
	}
	id, err := r.generateUniqueID()
	if err != nil {
		return nil, err
	}
	t := &Ticket{
		ID:          id,
		OwnerUserID: userID,
		Category:    cat,
		Lang:        lang,
	}
	r.tickets[id] = t
	r.activeByUser[userID] = id
	return t, nil
}

// Get returns the open ticket with the given id, or nil.
func (r *TicketRegistry) Get(id int) *Ticket {
	return r.tickets[id]
}

// ActiveTicket returns the user's open ticket id, if any.
func (r *TicketRegistry) ActiveTicket(userID int64) (int, bool) {
	id, ok := r.activeByUser[userID]
	return id, ok
}

// AppendLinkedMessage records another managers-channel message for the
// ticket. Unknown ids are ignored.
func (r *TicketRegistry) AppendLinkedMessage(ticketID, messageID int) {
	if t, ok := r.tickets[ticketID]; ok {
		t.LinkedMessages = append(t.LinkedMessages, messageID)
	}
}

// Close removes the ticket and returns it for cleanup, along with
// whether it was still the owner's recorded active ticket. The active
// pointer is cleared only if it still references this ticket, guarding
// against a newer ticket created under the same user. Closing an
// unknown id returns nil, making double-close a no-op.
func (r *TicketRegistry) Close(ticketID int) (*Ticket, bool) {
	t, ok := r.tickets[ticketID]
	if !ok {
		return nil, false
	}
	delete(r.tickets, ticketID)
	if active, has := r.activeByUser[t.OwnerUserID]; has && active == ticketID {
		delete(r.activeByUser, t.OwnerUserID)
		return t, true
	}
	return t, false
}

// OpenCount reports how many tickets are currently open.
func (r *TicketRegistry) OpenCount() int { return len(r.tickets) }
