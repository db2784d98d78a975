// Package corpus discovers show directories in a transcript tree.
package corpus

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"kanarate/internal/subtitle"
)

// DefaultBackupDir is the folder name excluded from scans unless backups
// are explicitly requested.
const DefaultBackupDir = "SubtitleBackup"

// Show is one directory containing episode subtitle files.
type Show struct {
	Dir  string
	Name string
}

// CollectShows walks root for subtitle files and returns their parent
// directories, sorted by path. Directories named backupDir (any depth) are
// skipped unless includeBackup is set. Unreadable entries are skipped, not
// fatal: one bad directory must not abort the batch.
func CollectShows(root string, includeBackup bool, backupDir string) ([]Show, error) {
	if backupDir == "" {
		backupDir = DefaultBackupDir
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("failed to scan %s: not a directory", root)
	}

	seen := make(map[string]bool)
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if !includeBackup && d.Name() == backupDir {
				return fs.SkipDir
			}
			return nil
		}
		if subtitle.Recognized(path) {
			seen[filepath.Dir(path)] = true
		}
		return nil
	})

	dirs := make([]string, 0, len(seen))
	for dir := range seen {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	shows := make([]Show, len(dirs))
	for i, dir := range dirs {
		shows[i] = Show{Dir: dir, Name: filepath.Base(dir)}
	}
	return shows, nil
}

// EpisodeFiles lists the subtitle files directly inside dir, sorted by
// name.
func (s Show) EpisodeFiles() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.Dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(s.Dir, entry.Name())
		if subtitle.Recognized(path) {
			files = append(files, path)
		}
	}
	sort.Strings(files)
	return files, nil
}
