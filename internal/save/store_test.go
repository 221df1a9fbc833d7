package save

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"shadowmaster/assets"
	"shadowmaster/internal/game"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	g := game.New(assets.Defaults(), rand.New(rand.NewSource(1)))
	g.Ledger.Gold = 500
	if _, err := g.Recruit("orc"); err != nil {
		t.Fatal(err)
	}

	store := NewStore(filepath.Join(t.TempDir(), "saves", "player.json"))
	if store.Exists() {
		t.Fatal("no save should exist yet")
	}
	if err := store.Save(g.Snapshot()); err != nil {
		t.Fatal(err)
	}
	if !store.Exists() {
		t.Fatal("save file missing after Save")
	}

	snap, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	restored := game.New(assets.Defaults(), rand.New(rand.NewSource(1)))
	restored.Restore(snap)

	if restored.Ledger.Gold != g.Ledger.Gold {
		t.Errorf("gold = %d, want %d", restored.Ledger.Gold, g.Ledger.Gold)
	}
	if len(restored.Roster.Creatures) != 1 || restored.Roster.Creatures[0].Type != "orc" {
		t.Errorf("roster lost in round trip: %+v", restored.Roster.Creatures)
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope.json"))
	_, err := store.Load()
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewStore(path).Load(); err == nil {
		t.Error("corrupt save must not load silently")
	}
}

func TestSaveOverwritesAtomically(t *testing.T) {
	g := game.New(assets.Defaults(), rand.New(rand.NewSource(1)))
	store := NewStore(filepath.Join(t.TempDir(), "player.json"))

	if err := store.Save(g.Snapshot()); err != nil {
		t.Fatal(err)
	}
	g.Ledger.Gold = 9999
	if err := store.Save(g.Snapshot()); err != nil {
		t.Fatal(err)
	}

	snap, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if snap.Ledger.Gold != 9999 {
		t.Errorf("gold = %d, want the second write", snap.Ledger.Gold)
	}

	// No temp droppings left behind.
	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want just the save file", len(entries))
	}
}
