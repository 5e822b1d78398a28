package i18n

import "testing"

func TestCategoryLabelRoundTrip(t *testing.T) {
	for _, lang := range []Lang{LangRU, LangEN} {
		for _, cat := range Categories {
			label := CategoryLabel(lang, cat)
			if label == "" {
				t.Fatalf("no label for %s/%s", lang, cat)
			}
			got, ok := CategoryByLabel(lang, label)
			if !ok || got != cat {
				t.Errorf("CategoryByLabel(%s, %q) = (%s,%v), want %s", lang, label, got, ok, cat)
			}
		}
	}
}

func TestCategoryByLabelRejectsFreeText(t *testing.T) {
	if _, ok := CategoryByLabel(LangEN, "my app crashes"); ok {
		t.Error("free text matched a category label")
	}
	// Labels only match within their own language.
	if _, ok := CategoryByLabel(LangRU, CategoryLabel(LangEN, CategoryTech)); ok {
		t.Error("english label matched under russian catalog")
	}
}

func TestValid(t *testing.T) {
	for code, want := range map[string]bool{"ru": true, "en": true, "de": false, "": false} {
		if got := Valid(code); got != want {
			t.Errorf("Valid(%q) = %v, want %v", code, got, want)
		}
	}
}

func TestUnknownLangFallsBack(t *testing.T) {
	if Welcome(Lang("xx")) != Welcome(DefaultLang) {
		t.Error("unknown language did not fall back to the default catalog")
	}
}
