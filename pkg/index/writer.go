package index

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Write serializes the manifest and writes it atomically: the JSON is
// staged in a temp file next to the destination and renamed into place, so
// an interrupted run never leaves a truncated manifest behind.
func (idx *Index) Write(path string) error {
	data, err := json.MarshalIndent(idx.Entries, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to serialize manifest")
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create output directory %q", dir)
	}

	tmp, err := os.CreateTemp(dir, ".skills-*.json")
	if err != nil {
		return errors.Wrap(err, "failed to create temp manifest")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "failed to write manifest")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "failed to write manifest")
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "failed to set manifest permissions")
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to replace manifest %q", path)
	}

	return nil
}
