package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"printshop-backend/internal/config"
)

// OrphanSweeper removes bucket objects that no order references. They are
// left behind when an upload succeeded but the order insert, or the
// cleanup after it, did not.
type OrphanSweeper struct {
	orders    OrderStore
	documents DocumentStore
	interval  time.Duration
	grace     time.Duration
	now       func() time.Time
}

// NewOrphanSweeper refuses a grace period shorter than
// config.MinOrphanGracePeriod unless the sweeper is disabled.
func NewOrphanSweeper(orders OrderStore, documents DocumentStore, interval, grace time.Duration) (*OrphanSweeper, error) {
	if interval > 0 && grace < config.MinOrphanGracePeriod {
		return nil, fmt.Errorf("orphan grace period %s is shorter than %s", grace, config.MinOrphanGracePeriod)
	}

	return &OrphanSweeper{
		orders:    orders,
		documents: documents,
		interval:  interval,
		grace:     grace,
		now:       time.Now,
	}, nil
}

// Start runs Sweep on every tick until ctx is cancelled. A non-positive
// interval disables the sweeper.
func (s *OrphanSweeper) Start(ctx context.Context) error {
	if s.interval <= 0 {
		zap.L().Info("orphan sweeper disabled")
		return nil
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			removed, err := s.Sweep(ctx)
			if err != nil {
				zap.L().Error("orphan sweep failed", zap.Error(err))
				continue
			}
			if removed > 0 {
				zap.L().Info("orphan sweep finished", zap.Int("removed", removed))
			}
		}
	}
}

// Sweep removes unreferenced objects older than the grace period and
// returns how many it removed. Objects whose name carries no upload
// timestamp are never touched.
func (s *OrphanSweeper) Sweep(ctx context.Context) (int, error) {
	if s.grace < config.MinOrphanGracePeriod {
		return 0, fmt.Errorf("orphan grace period %s is shorter than %s", s.grace, config.MinOrphanGracePeriod)
	}

	urls, err := s.orders.ListDocumentURLs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list referenced documents: %w", err)
	}

	referenced := make(map[string]struct{}, len(urls))
	for _, url := range urls {
		if path, ok := s.documents.PathFromURL(url); ok {
			referenced[path] = struct{}{}
		}
	}

	folders, err := s.documents.List("")
	if err != nil {
		return 0, fmt.Errorf("failed to list bucket: %w", err)
	}

	cutoff := s.now().Add(-s.grace)
	var orphans []string

	for _, folder := range folders {
		if !folder.Folder {
			continue
		}
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		objects, err := s.documents.List(folder.Name)
		if err != nil {
			return 0, fmt.Errorf("failed to list folder %s: %w", folder.Name, err)
		}

		for _, object := range objects {
			if object.Folder {
				continue
			}
			uploadedAt, ok := documentTimestamp(object.Name)
			if !ok || uploadedAt.After(cutoff) {
				continue
			}
			path := strings.TrimSuffix(folder.Name, "/") + "/" + object.Name
			if _, ok := referenced[path]; ok {
				continue
			}
			orphans = append(orphans, path)
		}
	}

	if len(orphans) == 0 {
		return 0, nil
	}
	if err := s.documents.Remove(orphans...); err != nil {
		return 0, fmt.Errorf("failed to remove %d orphaned documents: %w", len(orphans), err)
	}

	zap.L().Info("removed orphaned documents", zap.Strings("paths", orphans))
	return len(orphans), nil
}
