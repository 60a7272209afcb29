package archive

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"go-game-library/constants"
)

var unixLaunchExts = map[string]bool{
	".exe":      true,
	".sh":       true,
	".appimage": true,
	".x86_64":   true,
}

// Installers, redistributables and crash reporters shipped next to games.
var helperPrefixes = []string{"unins", "vc_redist", "vcredist", "dxsetup", "unitycrashhandler", "crashreport", "setup"}

// FindExecutable picks the most likely game executable among files, given
// as slash-separated paths relative to root. Shallower paths win, then
// names in alphabetical order; helper programs are only chosen when
// nothing else qualifies. It returns "" when no file is executable.
func FindExecutable(root string, files []string, goos string) string {
	var primary, helpers []string
	for _, f := range files {
		if !isExecutable(root, f, goos) {
			continue
		}
		if isHelper(f) {
			helpers = append(helpers, f)
		} else {
			primary = append(primary, f)
		}
	}

	candidates := primary
	if len(candidates) == 0 {
		candidates = helpers
	}
	if len(candidates) == 0 {
		return ""
	}

	sort.Slice(candidates, func(i, j int) bool {
		di, dj := strings.Count(candidates[i], "/"), strings.Count(candidates[j], "/")
		if di != dj {
			return di < dj
		}
		return strings.ToLower(candidates[i]) < strings.ToLower(candidates[j])
	})
	return filepath.Join(root, filepath.FromSlash(candidates[0]))
}

func isExecutable(root, rel, goos string) bool {
	ext := strings.ToLower(path.Ext(rel))
	if goos == constants.OSWindows {
		return ext == ".exe"
	}
	if unixLaunchExts[ext] {
		return true
	}
	info, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}

func isHelper(rel string) bool {
	name := strings.ToLower(path.Base(rel))
	for _, p := range helperPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
