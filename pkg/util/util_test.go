package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := ExpandPath("~/.hmac_challenge")
	if err != nil {
		t.Fatalf("ExpandPath error: %v", err)
	}
	if got != filepath.Join(home, ".hmac_challenge") {
		t.Fatalf("unexpected path %s", got)
	}
	if got, _ := ExpandPath("~"); got != home {
		t.Fatalf("unexpected home %s", got)
	}
	if got, _ := ExpandPath("/etc/secret"); got != "/etc/secret" {
		t.Fatalf("absolute path changed: %s", got)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "secret")
	if FileExists(path) {
		t.Fatal("missing file reported as existing")
	}
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !FileExists(path) {
		t.Fatal("file not found")
	}
	if FileExists(dir) {
		t.Fatal("directory reported as file")
	}
}

func TestQRCodeToUTF8(t *testing.T) {
	bitmap := [][]bool{{true, false}, {false, true}}
	want := "██  \n  ██\n"
	if got := QRCodeToUTF8(bitmap, false); got != want {
		t.Fatalf("unexpected render %q", got)
	}
	wantInv := "  ██\n██  \n"
	if got := QRCodeToUTF8(bitmap, true); got != wantInv {
		t.Fatalf("unexpected inverse render %q", got)
	}
}
