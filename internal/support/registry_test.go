package support

import (
	"errors"
	"testing"

	"github.com/Mahhmanee/Sup/internal/i18n"
)

func TestCreateAssignsUniqueIDs(t *testing.T) {
	// Shrink the space below a plausible concurrent ticket count so
	// collisions are certain and re-rolling is exercised.
	r := NewTicketRegistry(1, 10)

	seen := make(map[int]bool)
	for user := int64(1); user <= 10; user++ {
		tk, err := r.Create(user, i18n.CategoryTech, i18n.LangEN)
		if err != nil {
			t.Fatalf("create for user %d: %v", user, err)
		}
		if tk.ID < 1 || tk.ID > 10 {
			t.Fatalf("id %d outside configured range", tk.ID)
		}
		if seen[tk.ID] {
			t.Fatalf("id %d allocated twice", tk.ID)
		}
		seen[tk.ID] = true
	}

	if _, err := r.Create(11, i18n.CategoryTech, i18n.LangEN); !errors.Is(err, ErrIDSpaceExhausted) {
		t.Fatalf("err = %v, want ErrIDSpaceExhausted", err)
	}
}

func TestCollisionForcedAllocation(t *testing.T) {
	// With ids {1,2} and one open ticket, allocation must yield the
	// single remaining id and must terminate.
	for i := 0; i < 50; i++ {
		r := NewTicketRegistry(1, 2)
		first, err := r.Create(1, i18n.CategoryTech, i18n.LangEN)
		if err != nil {
			t.Fatalf("first create: %v", err)
		}
		second, err := r.Create(2, i18n.CategoryFAQ, i18n.LangRU)
		if err != nil {
			t.Fatalf("second create: %v", err)
		}
		if second.ID == first.ID {
			t.Fatalf("collision escaped: both tickets got id %d", first.ID)
		}
	}
}

func TestCreateRejectsSecondActiveTicket(t *testing.T) {
	r := NewTicketRegistry(10000, 99999)

	tk, err := r.Create(42, i18n.CategoryTech, i18n.LangEN)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := r.Create(42, i18n.CategoryPayment, i18n.LangEN); !errors.Is(err, ErrActiveTicket) {
		t.Fatalf("err = %v, want ErrActiveTicket", err)
	}

	// The original ticket is untouched.
	if got := r.Get(tk.ID); got == nil || got.Category != i18n.CategoryTech {
		t.Errorf("original ticket disturbed: %+v", got)
	}
	if id, ok := r.ActiveTicket(42); !ok || id != tk.ID {
		t.Errorf("active ticket = (%d,%v), want %d", id, ok, tk.ID)
	}
}

func TestCloseReturnsRecordAndClearsPointer(t *testing.T) {
	r := NewTicketRegistry(10000, 99999)
	tk, err := r.Create(42, i18n.CategoryHWID, i18n.LangRU)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	r.AppendLinkedMessage(tk.ID, 111)
	r.AppendLinkedMessage(tk.ID, 222)

	closed, wasActive := r.Close(tk.ID)
	if closed == nil || !wasActive {
		t.Fatalf("Close = (%v,%v), want record and active", closed, wasActive)
	}
	if len(closed.LinkedMessages) != 2 {
		t.Errorf("linked messages = %v, want [111 222]", closed.LinkedMessages)
	}
	if r.Get(tk.ID) != nil {
		t.Error("ticket still present after close")
	}
	if _, ok := r.ActiveTicket(42); ok {
		t.Error("active pointer survived close")
	}

	// The user is free to open a new ticket afterwards.
	again, err := r.Create(42, i18n.CategoryFAQ, i18n.LangEN)
	if err != nil {
		t.Fatalf("create after close: %v", err)
	}
	if id, ok := r.ActiveTicket(42); !ok || id != again.ID {
		t.Errorf("active ticket = (%d,%v), want %d", id, ok, again.ID)
	}
}

func TestCloseIdempotent(t *testing.T) {
	r := NewTicketRegistry(10000, 99999)
	tk, err := r.Create(42, i18n.CategoryTech, i18n.LangEN)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if closed, _ := r.Close(tk.ID); closed == nil {
		t.Fatal("first close returned nothing")
	}
	if closed, wasActive := r.Close(tk.ID); closed != nil || wasActive {
		t.Errorf("second close = (%v,%v), want no-op", closed, wasActive)
	}
	if closed, _ := r.Close(55555); closed != nil {
		t.Error("closing a never-existing id returned a record")
	}
}

func TestAppendLinkedMessageUnknownTicket(t *testing.T) {
	r := NewTicketRegistry(10000, 99999)
	r.AppendLinkedMessage(12345, 1) // must not panic

	tk, err := r.Create(1, i18n.CategoryTech, i18n.LangEN)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	r.AppendLinkedMessage(tk.ID, 7)
	if len(tk.LinkedMessages) != 1 || tk.LinkedMessages[0] != 7 {
		t.Errorf("linked messages = %v, want [7]", tk.LinkedMessages)
	}
}

func TestActiveTicketOwnership(t *testing.T) {
	r := NewTicketRegistry(1, 50)

	users := []int64{1, 2, 3, 4, 5}
	for _, u := range users {
		if _, err := r.Create(u, i18n.CategoryTech, i18n.LangEN); err != nil {
			t.Fatalf("create for %d: %v", u, err)
		}
	}
	for _, u := range users {
		id, ok := r.ActiveTicket(u)
		if !ok {
			t.Fatalf("user %d lost their active ticket", u)
		}
		tk := r.Get(id)
		if tk == nil || tk.OwnerUserID != u {
			t.Errorf("active ticket %d of user %d = %+v", id, u, tk)
		}
	}
}
