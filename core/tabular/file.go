package tabular

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"recon-manager/core/reconcile"
)

// Supported extensions.
const (
	ExtCSV  = ".csv"
	ExtXLSX = ".xlsx"
)

// File is one upload waiting to be parsed.
type File struct {
	// Source is the label of the input (A, B or C by default).
	Source string
	// Name is the original file name; its extension selects the parser.
	Name string
	// Size is the content length in bytes.
	Size int64
	// Open returns the content. It may be called once per parse.
	Open func() (io.ReadCloser, error)
}

// Ext returns the lower-cased file extension.
func (f File) Ext() string {
	return strings.ToLower(filepath.Ext(f.Name))
}

// FromFileHeader wraps a multipart upload.
func FromFileHeader(source string, fh *multipart.FileHeader) File {
	return File{
		Source: source,
		Name:   fh.Filename,
		Size:   fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

// FromPath wraps a file on disk.
func FromPath(source, path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, err
	}
	if info.IsDir() {
		return File{}, fmt.Errorf("%s is a directory", path)
	}
	return File{
		Source: source,
		Name:   filepath.Base(path),
		Size:   info.Size(),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// Validate checks the extension and size of an upload against the limits.
func Validate(cfg Config, f File) error {
	if f.Open == nil {
		return fileError(f.Source, "file is missing")
	}
	ext := f.Ext()
	allowed := false
	for _, e := range cfg.AllowedExtensions {
		if strings.EqualFold(strings.TrimSpace(e), ext) {
			allowed = true
			break
		}
	}
	if !allowed {
		return fileError(f.Source, fmt.Sprintf("%q has an unsupported extension, allowed: %s",
			f.Name, strings.Join(cfg.AllowedExtensions, ", ")))
	}
	if max := cfg.MaxBytes(); max > 0 && f.Size > max {
		return fileError(f.Source, fmt.Sprintf("%q is larger than %d MB", f.Name, cfg.MaxFileSizeMB))
	}
	return nil
}

func fileError(source, reason string) *reconcile.ValidationError {
	return &reconcile.ValidationError{Source: source, Field: "file", Reason: reason}
}
