package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go-game-library/utils"
	"go-game-library/utils/fileio"

	"github.com/bodgit/sevenzip"
	"github.com/nwaples/rardecode/v2"
)

// ErrUnsupportedFormat is returned for files that are not zip, 7z or rar archives.
var ErrUnsupportedFormat = errors.New("unsupported archive format")

// Format identifies an archive type by its file extension.
type Format string

const (
	FormatZip      Format = ".zip"
	FormatSevenZip Format = ".7z"
	FormatRar      Format = ".rar"
)

// DetectFormat returns the archive format of path based on its extension.
func DetectFormat(path string) (Format, error) {
	switch f := Format(strings.ToLower(filepath.Ext(path))); f {
	case FormatZip, FormatSevenZip, FormatRar:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// ProgressWriter counts bytes written through it and reports the overall
// percentage each time it grows by at least one point.
type ProgressWriter struct {
	Total      int64
	Written    int64
	OnProgress func(percentage float64)

	reported int64
}

func (pw *ProgressWriter) Write(p []byte) (int, error) {
	n := len(p)
	pw.Written += int64(n)
	if pw.Total > 0 && pw.OnProgress != nil {
		whole := pw.Written * 100 / pw.Total
		if whole > pw.reported {
			pw.reported = whole
			pw.OnProgress(float64(pw.Written) / float64(pw.Total) * 100)
		}
	}
	return n, nil
}

// Extract unpacks src into dest and returns the extracted regular files as
// slash-separated paths relative to dest. onProgress may be nil.
func Extract(src, dest string, onProgress func(percentage float64)) ([]string, error) {
	format, err := DetectFormat(src)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create destination directory: %w", err)
	}

	x := &extractor{
		dest:     filepath.Clean(dest),
		progress: &ProgressWriter{OnProgress: onProgress},
	}
	switch format {
	case FormatZip:
		err = x.zip(src)
	case FormatSevenZip:
		err = x.sevenZip(src)
	case FormatRar:
		err = x.rar(src)
	}
	if err != nil {
		return x.files, fmt.Errorf("failed to extract %s: %w", filepath.Base(src), err)
	}
	if onProgress != nil && x.progress.reported < 100 {
		onProgress(100)
	}
	return x.files, nil
}

type extractor struct {
	dest     string
	progress *ProgressWriter
	files    []string
}

func (x *extractor) zip(src string) error {
	r, err := zip.OpenReader(src)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		x.progress.Total += int64(f.UncompressedSize64)
	}
	for _, f := range r.File {
		if err := x.entry(f.Name, f.Mode(), f.Open); err != nil {
			return err
		}
	}
	return nil
}

func (x *extractor) sevenZip(src string) error {
	r, err := sevenzip.OpenReader(src)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		x.progress.Total += int64(f.UncompressedSize)
	}
	for _, f := range r.File {
		if err := x.entry(f.Name, f.Mode(), f.Open); err != nil {
			return err
		}
	}
	return nil
}

func (x *extractor) rar(src string) error {
	total, err := rarSize(src)
	if err != nil {
		return err
	}
	x.progress.Total = total

	r, err := rardecode.OpenReader(src)
	if err != nil {
		return err
	}
	defer r.Close()

	for {
		h, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		mode := h.Mode()
		if h.IsDir {
			mode |= fs.ModeDir
		}
		open := func() (io.ReadCloser, error) { return io.NopCloser(r), nil }
		if err := x.entry(h.Name, mode, open); err != nil {
			return err
		}
	}
}

// rarSize sums the unpacked sizes by walking the headers once.
func rarSize(src string) (int64, error) {
	r, err := rardecode.OpenReader(src)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	var total int64
	for {
		h, err := r.Next()
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return 0, err
		}
		if !h.IsDir && !h.UnKnownSize {
			total += h.UnPackedSize
		}
	}
}

// entry writes one archive member below x.dest.
func (x *extractor) entry(name string, mode fs.FileMode, open func() (io.ReadCloser, error)) error {
	rel := utils.SanitizePath(name)
	if rel == "." {
		return nil
	}
	target := filepath.Join(x.dest, rel)
	if !strings.HasPrefix(target, x.dest+string(os.PathSeparator)) {
		return fmt.Errorf("illegal file path: %s", name)
	}

	switch {
	case mode.IsDir():
		return os.MkdirAll(target, 0o755)
	case !mode.IsRegular():
		// Links and devices are not recreated.
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	rc, err := open()
	if err != nil {
		return err
	}
	defer fileio.Close(rc, nil, "")

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm()|0o600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(io.MultiWriter(out, x.progress), rc); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	x.files = append(x.files, filepath.ToSlash(rel))
	return nil
}
