package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ALEYI17/InfraSight_layerprof/pkg/logutil"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var ErrWriteFailed = errors.New("report write failed")

// WriteFile replaces path with data. The bytes go to a temp file in the
// same directory first, so path is either the old file or the full report.
func WriteFile(path string, data []byte) (err error) {
	logger := logutil.GetLogger()

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			err = multierr.Append(err, removeIfExists(tmpName))
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return multierr.Append(fmt.Errorf("%w: %w", ErrWriteFailed, err), tmp.Close())
	}
	if err := tmp.Sync(); err != nil {
		return multierr.Append(fmt.Errorf("%w: %w", ErrWriteFailed, err), tmp.Close())
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	logger.Info("Report written", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}

func removeIfExists(name string) error {
	if err := os.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
