package support

import (
	"testing"

	"github.com/Mahhmanee/Sup/internal/i18n"
)

func TestGetOrCreate(t *testing.T) {
	s := NewSessionStore()

	sess := s.GetOrCreate(42)
	if sess.Lang != "" || sess.HasPending {
		t.Errorf("fresh session = %+v, want empty", sess)
	}
	if again := s.GetOrCreate(42); again != sess {
		t.Error("second GetOrCreate returned a different session")
	}
}

func TestSetLanguageResetsPending(t *testing.T) {
	s := NewSessionStore()
	s.SetLanguage(42, i18n.LangEN)
	s.SetPendingCategory(42, i18n.CategoryTech)

	// A language switch puts the conversation back at the menu stage.
	s.SetLanguage(42, i18n.LangRU)

	sess := s.GetOrCreate(42)
	if sess.Lang != i18n.LangRU {
		t.Errorf("lang = %q, want ru", sess.Lang)
	}
	if sess.HasPending || sess.PendingCategory != "" {
		t.Errorf("pending category survived language switch: %+v", sess)
	}
}

func TestClearPendingCategory(t *testing.T) {
	s := NewSessionStore()
	s.SetLanguage(42, i18n.LangEN)
	s.SetPendingCategory(42, i18n.CategoryPayment)
	s.ClearPendingCategory(42)

	if sess := s.GetOrCreate(42); sess.HasPending {
		t.Errorf("pending not cleared: %+v", sess)
	}
	if sess := s.GetOrCreate(42); sess.Lang != i18n.LangEN {
		t.Error("clearing pending touched the language")
	}
}
