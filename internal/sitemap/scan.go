package sitemap

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

const pageSuffix = ".html"

// ScanDir lists the .html files directly inside dir in lexicographic order.
func ScanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), pageSuffix) {
			continue
		}
		files = append(files, entry.Name())
	}

	sort.Strings(files)
	return files, nil
}
