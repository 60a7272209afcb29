package icon

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ErrNoIcon is returned when no usable image sits next to the executable.
var ErrNoIcon = errors.New("no icon found")

// maxIconSize bounds how much image data is inlined into the document.
const maxIconSize = 4 << 20

var imageExts = []string{".png", ".jpg", ".jpeg", ".webp", ".ico", ".bmp", ".gif", ".svg"}

// Extract looks for an image belonging to the executable at exePath and
// returns it as a data URL. Candidates are files named after the executable
// (game.exe -> game.png) and then icon.* in the same directory.
func Extract(exePath string) (string, error) {
	if exePath == "" {
		return "", ErrNoIcon
	}
	dir := filepath.Dir(exePath)
	base := strings.TrimSuffix(filepath.Base(exePath), filepath.Ext(exePath))

	for _, stem := range []string{base, "icon"} {
		for _, candidate := range candidates(dir, stem) {
			uri, err := FromFile(candidate)
			if err == nil {
				return uri, nil
			}
		}
	}
	return "", fmt.Errorf("%w for %s", ErrNoIcon, exePath)
}

// FromFile reads an image file and returns it as a data URL. The MIME type
// comes from the file content, not the extension.
func FromFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > maxIconSize {
		return "", fmt.Errorf("%s is too large for an icon (%d bytes)", path, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read icon: %w", err)
	}
	return ToDataURI(data)
}

// ToDataURI encodes image bytes as a data URL.
func ToDataURI(data []byte) (string, error) {
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%w: content is %s", ErrNoIcon, mtype.String())
	}
	mime := strings.SplitN(mtype.String(), ";", 2)[0]
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data)), nil
}

// candidates lists image files in dir whose name without extension equals
// stem, case-insensitively, in a stable order.
func candidates(dir, stem string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !isImageExt(ext) {
			continue
		}
		if strings.EqualFold(strings.TrimSuffix(name, filepath.Ext(name)), stem) {
			out = append(out, filepath.Join(dir, name))
		}
	}
	sort.Strings(out)
	return out
}

func isImageExt(ext string) bool {
	for _, e := range imageExts {
		if e == ext {
			return true
		}
	}
	return false
}
