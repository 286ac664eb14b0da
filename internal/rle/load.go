package rle

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"lifeview/internal/core"
)

// maxSourceBytes caps how much of a source is read. Larger sources fail
// with a *LimitError rather than decoding a truncated body.
var maxSourceBytes int64 = 16 << 20

// loadConcurrency bounds the number of sources fetched at once by LoadAll.
const loadConcurrency = 4

// Load decodes a pattern from a local path or an http(s) URL. A nil client
// uses http.DefaultClient.
func Load(ctx context.Context, src string, client *http.Client) (*Pattern, error) {
	var (
		data []byte
		err  error
	)
	if isURL(src) {
		data, err = fetch(ctx, src, client)
	} else {
		data, err = readFile(src)
	}
	if err != nil {
		return nil, err
	}
	core.Logger().Debug("pattern source read", "src", src, "size", humanize.Bytes(uint64(len(data))))
	p, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	return p, nil
}

// LoadAll loads every source concurrently and returns the patterns in the
// order given. The first failure cancels the remaining loads.
func LoadAll(ctx context.Context, srcs []string, client *http.Client) ([]*Pattern, error) {
	out := make([]*Pattern, len(srcs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(loadConcurrency)
	for i, src := range srcs {
		g.Go(func() error {
			p, err := Load(ctx, src, client)
			if err != nil {
				return err
			}
			out[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func isURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

func fetch(ctx context.Context, url string, client *http.Client) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rle: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}
	data, err := readCapped(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("rle: fetch %s: %w", url, err)
	}
	if !isText(resp.Header.Get("Content-Type"), data) {
		return nil, fmt.Errorf("%s: %w", url, ErrNotText)
	}
	return data, nil
}

func readFile(name string) ([]byte, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := readCapped(f)
	if err != nil {
		return nil, fmt.Errorf("rle: read %s: %w", name, err)
	}
	return data, nil
}

// readCapped reads at most maxSourceBytes, failing when more is available.
func readCapped(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxSourceBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxSourceBytes {
		return nil, &LimitError{What: "source bytes", Limit: maxSourceBytes}
	}
	return data, nil
}

// isText checks the declared content type, sniffing the body when the
// server did not declare one.
func isText(contentType string, body []byte) bool {
	if contentType == "" {
		contentType = http.DetectContentType(body)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mediaType, "text/")
}
