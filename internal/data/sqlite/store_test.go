package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/louisbranch/chance/internal/data"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "tables.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}

func TestPutAndLookup(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "tlds", []string{"com", "org"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := data.Strings(store, "tlds")
	if err != nil {
		t.Fatalf("strings: %v", err)
	}
	if len(got) != 2 || got[0] != "com" || got[1] != "org" {
		t.Fatalf("tlds = %v, want [com org]", got)
	}

	if err := store.Put(ctx, "tlds", []string{"net"}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	got, err = data.Strings(store, "tlds")
	if err != nil {
		t.Fatalf("strings after replace: %v", err)
	}
	if len(got) != 1 || got[0] != "net" {
		t.Fatalf("tlds = %v, want [net]", got)
	}
}

func TestLookupMissing(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.Lookup("nope"); !errors.Is(err, data.ErrNotFound) {
		t.Fatalf("lookup error = %v, want %v", err, data.ErrNotFound)
	}
}

func TestPutRejectsInvalid(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	if err := store.Put(ctx, " ", []string{"x"}); !errors.Is(err, data.ErrInvalid) {
		t.Fatalf("blank name error = %v, want %v", err, data.ErrInvalid)
	}
	if err := store.Put(ctx, "bad", make(chan int)); !errors.Is(err, data.ErrInvalid) {
		t.Fatalf("unencodable error = %v, want %v", err, data.ErrInvalid)
	}
}

func TestImportStaticTables(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	n, err := store.Import(ctx, data.Static())
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	names, err := store.Names(ctx)
	if err != nil {
		t.Fatalf("names: %v", err)
	}
	if n != len(data.Static().Names()) || len(names) != n {
		t.Fatalf("imported %d tables, stored %d, want %d", n, len(names), len(data.Static().Names()))
	}

	want, err := data.Strings(data.Static(), "lastNames", "en")
	if err != nil {
		t.Fatalf("static strings: %v", err)
	}
	got, err := data.Strings(store, "lastNames", "en")
	if err != nil {
		t.Fatalf("stored strings: %v", err)
	}
	if len(got) != len(want) || got[0] != want[0] {
		t.Fatalf("stored last names differ from static tables")
	}
}

func TestImportNamedFromOverlay(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	overlay := data.NewOverlay(nil)
	if err := overlay.Set("colors", []string{"red"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := store.Import(ctx, overlay); err == nil {
		t.Fatal("expected import without names to fail for overlay")
	}
	if _, err := store.Import(ctx, overlay, "colors", "missing"); !errors.Is(err, data.ErrNotFound) {
		t.Fatalf("import missing error = %v, want %v", err, data.ErrNotFound)
	}
	if names, _ := store.Names(ctx); len(names) != 0 {
		t.Fatalf("partial import committed %v", names)
	}

	if _, err := store.Import(ctx, overlay, "colors"); err != nil {
		t.Fatalf("import: %v", err)
	}
	if err := store.Delete(ctx, "colors"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Lookup("colors"); !errors.Is(err, data.ErrNotFound) {
		t.Fatalf("lookup after delete error = %v, want %v", err, data.ErrNotFound)
	}
}

func TestReopenKeepsTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.db")
	ctx := context.Background()

	store, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Put(ctx, "tlds", []string{"io"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if _, err := reopened.Lookup("tlds"); err != nil {
		t.Fatalf("lookup after reopen: %v", err)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(context.Background(), ""); err == nil {
		t.Fatal("expected empty path to fail")
	}
}
