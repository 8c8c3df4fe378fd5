package desktop

import (
	"os"
	"testing"

	"github.com/pkg/errors"
)

func TestSettingsStore(t *testing.T) {
	dir := t.TempDir()

	store := NewStore(dir, DefaultSettings)

	if store.Exists() {
		t.Errorf("store.Exists(): expected false on a fresh directory")
	}

	settings, err := store.Get(false)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := DefaultSettings, settings; e != g {
		t.Errorf("settings: expected '%v', got '%v'", e, g)
	}

	if err := store.Save(Settings{WindowWidth: 1024, WindowHeight: 768}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !store.Exists() {
		t.Errorf("store.Exists(): expected true after save")
	}

	reloaded, err := NewStore(dir, DefaultSettings).Get(false)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1024, reloaded.WindowWidth; e != g {
		t.Errorf("reloaded.WindowWidth: expected %d, got %d", e, g)
	}

	if _, err := os.Stat(store.Path() + "-new"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("temporary settings file should not remain, got %v", err)
	}
}

func TestSettingsStoreInvalidDocument(t *testing.T) {
	dir := t.TempDir()

	store := NewStore(dir, DefaultSettings)

	if err := os.WriteFile(store.Path(), []byte("{"), 0644); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	settings, err := store.Get(true)
	if err == nil {
		t.Errorf("expected an error")
	}

	if e, g := DefaultSettings, settings; e != g {
		t.Errorf("settings: expected defaults '%v', got '%v'", e, g)
	}
}

func TestSettingsNormalized(t *testing.T) {
	settings := Settings{WindowWidth: 0, WindowHeight: 1200}.Normalized()

	if e, g := DefaultSettings.WindowWidth, settings.WindowWidth; e != g {
		t.Errorf("settings.WindowWidth: expected %d, got %d", e, g)
	}

	if e, g := 1200, settings.WindowHeight; e != g {
		t.Errorf("settings.WindowHeight: expected %d, got %d", e, g)
	}
}
