package locale

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCatalog_Resolve(t *testing.T) {
	catalog := NewCatalog()
	catalog.Localize("DE", Strings{KeyAddTitle: "Neue Liste"})

	got := catalog.Resolve("de", nil)
	want := Strings{KeyAddTitle: "Neue Liste", KeyPrompt: "There is no item"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("resolve mismatch (-want +got):\n%s", diff)
	}

	got = catalog.Resolve("fr", Strings{KeyPrompt: "Vide"})
	want = Strings{KeyAddTitle: "Add new list", KeyPrompt: "Vide"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fallback mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"de", "en"}, catalog.Languages()); diff != "" {
		t.Fatalf("languages mismatch (-want +got):\n%s", diff)
	}
	if catalog.Has("fr") || !catalog.Has(" de ") {
		t.Fatal("unexpected Has result")
	}
}

func TestCatalog_Isolated(t *testing.T) {
	first := NewCatalog()
	second := NewCatalog()
	first.Localize(DefaultLanguage, Strings{KeyPrompt: "changed"})

	if got := second.Resolve(DefaultLanguage, nil)[KeyPrompt]; got != "There is no item" {
		t.Fatalf("catalogs share state: %q", got)
	}
}

func TestCatalog_Translate(t *testing.T) {
	catalog := NewCatalog()
	catalog.Localize("es", Strings{"count": "%d elementos"})

	got, err := catalog.Translate("es", "count", 3)
	if err != nil || got != "3 elementos" {
		t.Fatalf("translate = %q %v", got, err)
	}
	got, err = catalog.Translate("es", KeyPrompt)
	if err != nil || got != "There is no item" {
		t.Fatalf("default fallback = %q %v", got, err)
	}
	if _, err := catalog.Translate("es", "missing"); !errors.Is(err, ErrMissingTranslation) {
		t.Fatalf("expected ErrMissingTranslation, got %v", err)
	}
}
