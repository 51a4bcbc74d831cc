package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const exportLockRetry = 50 * time.Millisecond

// writeExport stores body at path byte-for-byte. A sidecar lock keeps concurrent
// exporters from interleaving writes to the same file. The sidecar is never
// removed: all exporters must lock the same inode.
func writeExport(ctx context.Context, path string, body []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure export directory: %w", err)
		}
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLockContext(ctx, exportLockRetry)
	if err != nil {
		return fmt.Errorf("lock export %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("lock export %s: not acquired", path)
	}
	defer func() { _ = lock.Unlock() }()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, body, 0o644); err != nil {
		return fmt.Errorf("write export %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("finalize export %s: %w", path, err)
	}
	return nil
}
