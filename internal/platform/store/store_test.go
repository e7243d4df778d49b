package store

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
)

func testRoundTrip(t *testing.T, st Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := st.Load(ctx, "patients")
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if ok {
		t.Fatal("expected key to be absent")
	}

	want := []byte(`{"schema_version":1,"records":[]}`)
	if err := st.Save(ctx, "patients", want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok, err := st.Load(ctx, "patients")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}

	// Overwrite
	want = []byte(`{"schema_version":1,"records":[{"id":1}]}`)
	if err := st.Save(ctx, "patients", want); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ = st.Load(ctx, "patients")
	if !bytes.Equal(got, want) {
		t.Errorf("expected %q after overwrite, got %q", want, got)
	}

	if err := st.Delete(ctx, "patients"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, ok, _ = st.Load(ctx, "patients")
	if ok {
		t.Error("expected key gone after delete")
	}

	// Deleting an absent key is not an error.
	if err := st.Delete(ctx, "patients"); err != nil {
		t.Errorf("delete absent: %v", err)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	testRoundTrip(t, NewMemoryStore())
}

func TestFileStoreRoundTrip(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	testRoundTrip(t, st)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	st, err := NewSQLiteStore(filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	defer st.Close()
	testRoundTrip(t, st)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	orig := []byte("original")
	st.Save(ctx, "k", orig)
	orig[0] = 'X'

	got, _, _ := st.Load(ctx, "k")
	if string(got) != "original" {
		t.Errorf("stored value aliased caller's buffer: %q", got)
	}
	got[0] = 'Y'
	again, _, _ := st.Load(ctx, "k")
	if string(again) != "original" {
		t.Errorf("loaded value aliased store's buffer: %q", again)
	}
}

func TestFileStoreRejectsBadKeys(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	ctx := context.Background()
	for _, key := range []string{"", "a/b", `a\b`, "a.b", "../escape"} {
		if err := st.Save(ctx, key, []byte("x")); err == nil {
			t.Errorf("expected error for key %q", key)
		}
	}
}

func TestOpenSelectsDriver(t *testing.T) {
	ctx := context.Background()

	st, err := Open(ctx, Options{Driver: "memory"})
	if err != nil {
		t.Fatalf("open memory: %v", err)
	}
	if _, ok := st.(*MemoryStore); !ok {
		t.Errorf("expected *MemoryStore, got %T", st)
	}

	st, err = Open(ctx, Options{Driver: "fs", DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("open fs: %v", err)
	}
	if _, ok := st.(*FileStore); !ok {
		t.Errorf("expected *FileStore, got %T", st)
	}

	if _, err := Open(ctx, Options{Driver: "etcd"}); err == nil {
		t.Error("expected error for unknown driver")
	}
}
