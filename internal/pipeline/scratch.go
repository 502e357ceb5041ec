package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spritemill/spritemill/internal/logger"
)

// NewScratch creates an isolated per-invocation scratch directory for
// intermediate frame files. Concurrent invocations for different
// characters get distinct directories and never collide.
func NewScratch() (string, error) {
	dir := filepath.Join(os.TempDir(), "spritemill-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("creating scratch dir: %w", err)
	}
	return dir, nil
}

// removeScratch releases a scratch directory. Failure to release is
// non-fatal; it is logged and the run's outcome is unaffected.
func removeScratch(dir string) {
	if err := os.RemoveAll(dir); err != nil {
		logger.Warn("could not remove scratch dir", zap.String("dir", dir), zap.Error(err))
	}
}
