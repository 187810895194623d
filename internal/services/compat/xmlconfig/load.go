package xmlconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sdkgate/sdkgate/internal/services/compat/registry"
)

// LoadError reports a config document that failed to load. The registry state
// from earlier load calls stays untouched when one is returned.
type LoadError struct {
	File string
	Err  error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("load compat config %s: %v", e.File, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadDir parses every .xml document in dir, in lexical file-name order, and
// returns the concatenated change records. Callers merging the result by
// upsert get last-document-wins semantics for duplicate ids.
//
// The call is all-or-nothing: one unparsable document fails the whole load
// with a *LoadError naming the file, and no records are returned. A missing
// directory yields zero records, not an error.
func LoadDir(dir string) ([]registry.Change, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config dir: %w", err)
	}

	var changes []registry.Change
	// os.ReadDir returns entries sorted by file name.
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".xml") {
			continue
		}
		records, err := loadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, &LoadError{File: entry.Name(), Err: err}
		}
		changes = append(changes, records...)
	}
	return changes, nil
}

func loadFile(path string) ([]registry.Change, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseDocument(f)
}
