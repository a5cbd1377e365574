package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFiles writes each named document into dir, creating dir if needed.
// Files are written to a temporary name and renamed so a reader never sees
// a half-written report.
func WriteFiles(dir string, files map[string][]byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create output dir: %v", ErrRender, err)
	}
	for name, data := range files {
		path := filepath.Join(dir, name)
		tmp := path + ".tmp"
		if err := os.WriteFile(tmp, data, 0o644); err != nil {
			return fmt.Errorf("%w: write %s: %v", ErrRender, path, err)
		}
		if err := os.Rename(tmp, path); err != nil {
			os.Remove(tmp)
			return fmt.Errorf("%w: write %s: %v", ErrRender, path, err)
		}
	}
	return nil
}
