package app

import (
	"context"
	"fmt"
	"net/http"

	"lifeview/internal/core"
	"lifeview/internal/rle"
	"lifeview/internal/session"
)

// LoadPattern fetches src and posts it to s as the pattern on deck. It is
// safe to call from any goroutine.
func LoadPattern(ctx context.Context, s *session.Session, src string, client *http.Client) error {
	p, err := rle.Load(ctx, src, client)
	if err != nil {
		return fmt.Errorf("load %s: %w", src, err)
	}
	if !s.Post(session.LoadPattern{Pattern: p}) {
		return fmt.Errorf("load %s: event queue full", src)
	}
	core.Logger().Info("pattern loaded", "source", src, "cells", len(p.Cells))
	return nil
}
