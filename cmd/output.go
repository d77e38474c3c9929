package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"screenops/internal/appdirs"
)

// resolveOutputPath picks the destination for a capture file. An explicit
// path override wins; otherwise the file lands in dir (default: the
// screenops captures directory) under a sanitized or timestamped name.
func resolveOutputPath(pathOverride, dir, name, prefix, ext string) (string, error) {
	if strings.TrimSpace(pathOverride) != "" {
		path := filepath.Clean(pathOverride)
		if filepath.Ext(path) == "" {
			path = path + "." + ext
		}
		if err := appdirs.EnsureDir(filepath.Dir(path)); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
		return path, nil
	}

	baseDir := strings.TrimSpace(dir)
	if baseDir == "" {
		var err error
		baseDir, err = appdirs.CapturesDir()
		if err != nil {
			return "", err
		}
	}
	baseDir = filepath.Clean(baseDir)
	if err := appdirs.EnsureDir(baseDir); err != nil {
		return "", fmt.Errorf("create captures directory: %w", err)
	}

	filename := sanitizeFileName(name)
	if filename == "" {
		filename = fmt.Sprintf("%s-%s", prefix, time.Now().Format("20060102-150405"))
	}
	if !strings.HasSuffix(strings.ToLower(filename), "."+ext) {
		filename = filename + "." + ext
	}

	return filepath.Join(baseDir, filename), nil
}

func sanitizeFileName(name string) string {
	clean := strings.TrimSpace(name)
	if clean == "" {
		return ""
	}
	clean = filepath.Base(clean)
	clean = strings.TrimSuffix(clean, filepath.Ext(clean))
	clean = strings.ReplaceAll(clean, " ", "_")
	clean = strings.ReplaceAll(clean, string(os.PathSeparator), "_")
	return clean
}

func toFileURI(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return "file://" + filepath.ToSlash(abs)
}

func isJPEGFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "jpeg", "jpg":
		return true
	default:
		return false
	}
}
