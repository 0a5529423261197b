package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tourhub/backend/internal/cache"
	"github.com/tourhub/backend/internal/storage"
	"github.com/tourhub/backend/pkg/logger"
)

// photoManager bundles the object-storage operations shared by every
// workflow that owns photo keys: positional presigning and best-effort
// batch deletion. Update and delete paths both go through removeAll so the
// swallow-and-warn policy lives in exactly one place.
type photoManager struct {
	storage storage.ObjectStorage
	urls    *cache.PresignCache // optional
}

// presignAll derives a retrieval URL for every key concurrently. The
// returned slice is positionally parallel to keys; any presign failure
// fails the whole derivation.
func (p *photoManager) presignAll(ctx context.Context, keys []string) ([]string, error) {
	urls := make([]string, len(keys))

	g, gCtx := errgroup.WithContext(ctx)
	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			if p.urls != nil {
				if cached := p.urls.Get(gCtx, key); cached != "" {
					urls[i] = cached
					return nil
				}
			}

			url, err := p.storage.PresignedURL(gCtx, key)
			if err != nil {
				return err
			}

			if p.urls != nil {
				p.urls.Set(gCtx, key, url)
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return urls, nil
}

// removeAll deletes the objects behind keys best-effort: individual
// failures are logged and skipped, never aborting the caller's workflow.
// The removed keys must leave the owning entity's key list in the same
// logical step, otherwise they dangle.
func (p *photoManager) removeAll(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := p.storage.Remove(ctx, key); err != nil {
			logger.Warn("photo delete failed, leaving object behind",
				zap.String("key", key), zap.Error(err))
			continue
		}
		if p.urls != nil {
			p.urls.Invalidate(ctx, key)
		}
	}
}

// ownedOnly filters a requested deletion list down to keys the entity
// actually owns. A stray key in the request must not delete an object
// belonging to another entity.
func ownedOnly(existing, requested []string) []string {
	own := make(map[string]struct{}, len(existing))
	for _, key := range existing {
		own[key] = struct{}{}
	}

	kept := make([]string, 0, len(requested))
	for _, key := range requested {
		if _, ok := own[key]; ok {
			kept = append(kept, key)
		}
	}
	return kept
}

// mergeKeys computes the post-update key list: existing keys minus the
// deleted ones, relative order preserved, then the newly uploaded keys in
// upload order.
func mergeKeys(existing, deleted, added []string) []string {
	drop := make(map[string]struct{}, len(deleted))
	for _, key := range deleted {
		drop[key] = struct{}{}
	}

	merged := make([]string, 0, len(existing)+len(added))
	for _, key := range existing {
		if _, ok := drop[key]; !ok {
			merged = append(merged, key)
		}
	}

	return append(merged, added...)
}
