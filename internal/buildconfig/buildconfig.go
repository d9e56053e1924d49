// Package buildconfig edits the native-packaging config before release
// builds.
package buildconfig

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ModeProduction is the only build mode that rewrites the config.
const ModeProduction = "production"

// ErrBlockNotFound is returned when the config has no dev-server block.
var ErrBlockNotFound = errors.New("dev server block not found")

// devServerBlock matches a flat `server: { ... cleartext: true ... }`
// property on its own lines, with its trailing comma and line break.
var devServerBlock = regexp.MustCompile(`(?m)^[ \t]*server\s*:\s*\{[^{}]*\bcleartext\s*:\s*true\b[^{}]*\}[ \t]*,?[ \t]*\r?\n?`)

// StripDevServer removes the live-reload server block from src. The rest
// of the file is returned untouched.
func StripDevServer(src string) (string, error) {
	loc := devServerBlock.FindStringIndex(src)
	if loc == nil {
		return src, ErrBlockNotFound
	}
	return src[:loc[0]] + src[loc[1]:], nil
}

// StripFile rewrites path in place when mode is production. It reports
// whether the file changed; other modes never touch the file.
func StripFile(path, mode string) (bool, error) {
	if !strings.EqualFold(strings.TrimSpace(mode), ModeProduction) {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	out, err := StripDevServer(string(raw))
	if err != nil {
		return false, err
	}

	if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}
