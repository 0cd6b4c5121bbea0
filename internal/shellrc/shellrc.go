// Package shellrc edits the user's shell startup file. The only operation it
// offers is a guarded append: a line is written at most once, keyed by exact
// line equality after trimming, so re-running the setup never duplicates
// configuration. Detection of which startup file to edit follows the SHELL
// environment variable.
package shellrc

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// startupFiles maps a supported shell to its interactive startup file name.
var startupFiles = map[string]string{
	"zsh":  ".zshrc",
	"bash": ".bashrc",
}

// Detect identifies the user's shell from the SHELL env variable.
// Returns "zsh" or "bash", defaulting to "zsh" when unknown.
func Detect() string {
	shell := os.Getenv("SHELL")
	if strings.Contains(shell, "zsh") {
		return "zsh"
	} else if strings.Contains(shell, "bash") {
		return "bash"
	}
	return "zsh"
}

// StartupFile returns the startup file path for the detected shell under the
// given home directory.
func StartupFile(home string) string {
	return filepath.Join(home, startupFiles[Detect()])
}

// HasLine reports whether the file already contains the line. Lines are
// compared after trimming surrounding whitespace. A missing file simply has
// no lines.
func HasLine(path, line string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	want := strings.TrimSpace(line)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == want {
			return true, nil
		}
	}
	return false, scanner.Err()
}

// EnsureLinePresent appends line to the file unless an identical line is
// already there. It reports whether an append happened. The file is created
// when absent.
func EnsureLinePresent(path, line string) (bool, error) {
	present, err := HasLine(path, line)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if present {
		return false, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("open %s for appending: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(strings.TrimSpace(line) + "\n"); err != nil {
		return false, fmt.Errorf("append to %s: %w", path, err)
	}
	return true, nil
}
