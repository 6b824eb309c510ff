package export

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"cferrpage/pkg/errx"
)

// Downloader saves a rendered page under a file name.
type Downloader interface {
	SaveHTML(dir, filename, html string) (string, error)
}

// FileDownloader writes pages to the local filesystem.
type FileDownloader struct {
	Mode os.FileMode
}

// NewFileDownloader returns a FileDownloader writing world-readable files.
func NewFileDownloader() *FileDownloader {
	return &FileDownloader{Mode: 0o644}
}

// SaveHTML writes html to dir/filename and returns the written path. The file
// is written to a temporary name in dir and renamed into place, so readers
// never observe a partial page. filename must be a bare name.
func (d *FileDownloader) SaveHTML(dir, filename, html string) (string, error) {
	if err := validateFilename(filename); err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	info, err := os.Stat(dir)
	if err != nil {
		return "", errx.WrapExport("output directory is not accessible", err).WithContext("dir", dir)
	}
	if !info.IsDir() {
		return "", errx.Export("output path is not a directory").WithContext("dir", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filename+".*.tmp")
	if err != nil {
		return "", errx.WrapExport("failed to create temp file", err).WithContext("dir", dir)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.WriteString(html); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", errx.WrapExport("failed to write temp file", err).WithContext("file", tmpName)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", errx.WrapExport("failed to close temp file", err).WithContext("file", tmpName)
	}
	if err := os.Chmod(tmpName, d.mode()); err != nil {
		cleanup()
		return "", errx.WrapExport("failed to set file mode", err).WithContext("file", tmpName)
	}

	path := filepath.Join(dir, filename)
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return "", errx.WrapExport("failed to save error page", err).WithContext("path", path)
	}
	return path, nil
}

func (d *FileDownloader) mode() os.FileMode {
	if d == nil || d.Mode == 0 {
		return 0o644
	}
	return d.Mode
}

func validateFilename(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return errx.Export("file name is required")
	case name == "." || name == "..":
		return errx.Export("invalid file name").WithContext("filename", name)
	case strings.ContainsAny(name, `/\`):
		return errx.Export("file name must not contain path separators").WithContext("filename", name)
	case strings.IndexFunc(name, unicode.IsControl) >= 0:
		return errx.Export("file name must not contain control characters").WithContext("filename", name)
	}
	return nil
}
