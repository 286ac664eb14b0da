package rle

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const blinker = "x = 3, y = 1\n3o!\n"

func newPatternServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/blinker.rle", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(blinker))
	})
	mux.HandleFunc("/image.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("\x89PNG\r\n\x1a\n"))
	})
	mux.HandleFunc("/huge.rle", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(hugeSource()))
	})
	mux.HandleFunc("/missing.rle", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLoadURL(t *testing.T) {
	srv := newPatternServer(t)
	p, err := Load(context.Background(), srv.URL+"/blinker.rle", srv.Client())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(p.Cells) != 3 {
		t.Fatalf("cells=%v", p.Cells)
	}
}

func TestLoadURLRejectsNonText(t *testing.T) {
	srv := newPatternServer(t)
	_, err := Load(context.Background(), srv.URL+"/image.png", srv.Client())
	if !errors.Is(err, ErrNotText) {
		t.Fatalf("err=%v, want ErrNotText", err)
	}
}

func TestLoadURLSurfacesStatus(t *testing.T) {
	srv := newPatternServer(t)
	_, err := Load(context.Background(), srv.URL+"/missing.rle", srv.Client())
	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusNotFound {
		t.Fatalf("err=%v, want 404 StatusError", err)
	}
}

func TestIsTextSniffsWhenUndeclared(t *testing.T) {
	if !isText("", []byte(blinker)) {
		t.Fatal("plain RLE text should sniff as text")
	}
	if isText("", []byte("\x89PNG\r\n\x1a\n\x00\x00")) {
		t.Fatal("PNG bytes should not sniff as text")
	}
}

func TestLoadAllPreservesOrder(t *testing.T) {
	srv := newPatternServer(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "block.rle")
	if err := os.WriteFile(path, []byte("x = 2, y = 2\n2o$2o!\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadAll(context.Background(), []string{path, srv.URL + "/blinker.rle"}, srv.Client())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(got) != 2 || len(got[0].Cells) != 4 || len(got[1].Cells) != 3 {
		t.Fatalf("LoadAll order mismatch: %+v", got)
	}

	if _, err := LoadAll(context.Background(), []string{path, srv.URL + "/missing.rle"}, srv.Client()); err == nil {
		t.Fatal("LoadAll must fail when any source fails")
	}
}

func TestLoadDecodeErrorNamesSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.rle")
	if err := os.WriteFile(path, []byte("x = 1, y = 1\nq!"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(context.Background(), path, nil)
	var te *TokenError
	if !errors.As(err, &te) {
		t.Fatalf("err=%v, want wrapped TokenError", err)
	}
}

// hugeSource is a valid pattern whose only live cell sits past the first
// 2 KiB, so truncation would silently drop it.
func hugeSource() string {
	return "x = 70, y = 40\n" + strings.Repeat(strings.Repeat("b", 70)+"$\n", 40) + "o!\n"
}

func shrinkSourceLimit(t *testing.T, n int64) {
	t.Helper()
	prev := maxSourceBytes
	maxSourceBytes = n
	t.Cleanup(func() { maxSourceBytes = prev })
}

func TestLoadURLRejectsOversizedBody(t *testing.T) {
	shrinkSourceLimit(t, 2048)
	srv := newPatternServer(t)
	p, err := Load(context.Background(), srv.URL+"/huge.rle", srv.Client())
	if p != nil {
		t.Fatal("truncated source decoded into a pattern")
	}
	var le *LimitError
	if !errors.As(err, &le) || !errors.Is(err, ErrTooLarge) || le.Limit != 2048 {
		t.Fatalf("err=%v, want LimitError at 2048 bytes", err)
	}
}

func TestLoadFileRejectsOversizedSource(t *testing.T) {
	shrinkSourceLimit(t, 2048)
	path := filepath.Join(t.TempDir(), "huge.rle")
	if err := os.WriteFile(path, []byte(hugeSource()), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(context.Background(), path, nil); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err=%v, want ErrTooLarge", err)
	}

	shrinkSourceLimit(t, int64(len(hugeSource())))
	p, err := Load(context.Background(), path, nil)
	if err != nil || len(p.Cells) != 1 {
		t.Fatalf("source at the limit: p=%v err=%v", p, err)
	}
}
