package image

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stockroom/service/internal/storage"
)

var generatedNameRe = regexp.MustCompile(`^/images/[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}_logo\.png$`)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()

	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("NewLocalStorage error: %v", err)
	}
	return NewService(store), dir
}

func TestService_SaveGeneratesUniqueURL(t *testing.T) {
	svc, _ := newTestService(t)
	content := []byte("png-bytes")

	url, err := svc.Save(context.Background(), "logo.png", "image/png", bytes.NewReader(content), int64(len(content)))
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if !generatedNameRe.MatchString(url) {
		t.Errorf("url %q does not match <uuid>_logo.png pattern", url)
	}

	url2, err := svc.Save(context.Background(), "logo.png", "image/png", bytes.NewReader(content), int64(len(content)))
	if err != nil {
		t.Fatalf("second Save error: %v", err)
	}
	if url == url2 {
		t.Errorf("two saves of the same file produced the same url %q", url)
	}
}

func TestService_SaveLoadRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	content := []byte{0x89, 'P', 'N', 'G', 0x00, 0x01}

	url, err := svc.Save(context.Background(), "logo.png", "image/png", bytes.NewReader(content), int64(len(content)))
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}

	name := strings.TrimPrefix(url, URLPrefix)
	rc, contentType, err := svc.Load(context.Background(), name)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	defer rc.Close()

	if contentType != "image/png" {
		t.Errorf("content type %q; expected image/png", contentType)
	}
	got, _ := io.ReadAll(rc)
	if !bytes.Equal(got, content) {
		t.Errorf("loaded bytes differ from uploaded bytes")
	}
}

func TestService_SaveUnsupportedWritesNothing(t *testing.T) {
	svc, dir := newTestService(t)

	_, err := svc.Save(context.Background(), "doc.pdf", "application/pdf", strings.NewReader("%PDF"), 4)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Save returned %v; expected ErrUnsupportedFormat", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("image directory has %d entries after rejected upload; expected 0", len(entries))
	}
}

func TestService_SaveMissingFileName(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Save(context.Background(), "", "image/png", strings.NewReader("x"), 1)
	if !errors.Is(err, ErrMissingFileName) {
		t.Fatalf("Save returned %v; expected ErrMissingFileName", err)
	}
}

func TestService_LoadMissing(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Load(context.Background(), "does-not-exist.png")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Load returned %v; expected storage.ErrNotFound", err)
	}
}

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"logo.png", "logo.png"},
		{"my photo.png", "my_photo.png"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\x\pic.jpg`, "pic.jpg"},
		{"weird$chars!.gif", "weird_chars_.gif"},
	}

	for _, tc := range cases {
		if got := sanitizeName(tc.in); got != tc.want {
			t.Errorf("sanitizeName(%q) = %q; expected %q", tc.in, got, tc.want)
		}
	}
}
