// Package parser reads single ball-by-ball match documents from disk and
// validates the structure the aggregation passes rely on.
package parser

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pable/go-cricket-stats/internal/model"
)

// Read loads and validates one match document. A document that cannot be
// decoded or is missing its two-team info block yields an error; callers skip
// the file and continue the batch.
func Read(path string) (*model.Match, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	var m model.Match
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	if len(m.Info.Teams) != 2 {
		return nil, fmt.Errorf("%s: expected 2 teams in info, got %d", filepath.Base(path), len(m.Info.Teams))
	}
	return &m, nil
}

// ListMatchFiles returns the match documents in a format directory, sorted by
// name. A missing directory is not an error; the format simply has no matches.
func ListMatchFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
