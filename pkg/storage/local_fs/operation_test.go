package local_fs

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *LocalFS {
	t.Helper()
	store, err := NewClient(&Config{SavePath: t.TempDir()})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return store
}

func TestSendFileAndDelete(t *testing.T) {
	store := newTestStore(t)

	key, err := store.SendFile("sub/cover.png", bytes.NewReader([]byte("png-bytes")))
	if err != nil {
		t.Fatalf("SendFile failed: %v", err)
	}
	if key != "sub/cover.png" {
		t.Errorf("SendFile key = %q, want %q", key, "sub/cover.png")
	}

	content, err := os.ReadFile(filepath.Join(store.Config.SavePath, "sub", "cover.png"))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(content) != "png-bytes" {
		t.Errorf("stored content = %q, want %q", content, "png-bytes")
	}

	if err := store.Delete(key); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.Config.SavePath, "sub", "cover.png")); !os.IsNotExist(err) {
		t.Errorf("file still exists after Delete")
	}
}

func TestDeleteMissingFileIsNoop(t *testing.T) {
	store := newTestStore(t)
	if err := store.Delete("never-stored.png"); err != nil {
		t.Errorf("Delete of missing file = %v, want nil", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("read broken")
}

func TestSendFileCleansUpOnCopyFailure(t *testing.T) {
	store := newTestStore(t)

	var r io.Reader = failingReader{}
	if _, err := store.SendFile("broken.png", r); err == nil {
		t.Fatal("SendFile with failing reader should error")
	}
	if _, err := os.Stat(filepath.Join(store.Config.SavePath, "broken.png")); !os.IsNotExist(err) {
		t.Errorf("partial file left behind after failed SendFile")
	}
}
