package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kpauljoseph/wrt2pdf/pkg/logger"
)

var fontExtensions = map[string]bool{
	".ttf": true,
	".otf": true,
}

type DirectoryScanner struct {
	logger *logger.Logger
}

func New(logger *logger.Logger) *DirectoryScanner {
	return &DirectoryScanner{
		logger: logger,
	}
}

// FindFonts walks the given directories and returns the paths of all
// TrueType and OpenType font files below them. Directories that do not
// exist are skipped. The result is sorted and free of duplicates.
func (s *DirectoryScanner) FindFonts(ctx context.Context, dirs ...string) ([]string, error) {
	seen := make(map[string]bool)
	var fonts []string

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
			s.logger.Trace("Font directory does not exist: %s", dir)
			continue
		}

		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			if err != nil {
				// unreadable sub directories are common in system font trees
				s.logger.Trace("Skipping %s: %v", path, err)
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				s.logger.Trace("Scanning directory: %s", path)
				return nil
			}

			if !fontExtensions[strings.ToLower(filepath.Ext(path))] {
				return nil
			}

			if !seen[path] {
				seen[path] = true
				fonts = append(fonts, path)
			}
			return nil
		})
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			return nil, fmt.Errorf("error scanning font directory %s: %w", dir, err)
		}
	}

	sort.Strings(fonts)
	s.logger.Debug("Found %d font files", len(fonts))
	return fonts, nil
}

// DefaultFontDirs returns the usual font locations of the running platform.
func DefaultFontDirs(goos string) []string {
	home, _ := os.UserHomeDir()
	switch goos {
	case "darwin":
		return []string{
			"/System/Library/Fonts",
			"/Library/Fonts",
			joinHome(home, "Library", "Fonts"),
		}
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		return []string{filepath.Join(windir, "Fonts")}
	default:
		return []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
			joinHome(home, ".local", "share", "fonts"),
			joinHome(home, ".fonts"),
		}
	}
}

func joinHome(home string, parts ...string) string {
	if home == "" {
		return ""
	}
	return filepath.Join(append([]string{home}, parts...)...)
}
