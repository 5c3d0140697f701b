// Package export wraps generated outline markup in the fixed document shell
// and delivers it to the clipboard or a file.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/Guerrilla-Interactive/ng-skeleton/app/outline"
)

// ErrEmptyPath is returned by WriteFile when no path is given.
var ErrEmptyPath = errors.New("output path is empty")

const (
	ressLink      = `  <link rel="stylesheet" href="https://unpkg.com/ress@4.0.0/dist/ress.min.css"/>`
	styleLink     = `  <link rel="stylesheet" href="style.css" />`
	bootstrapLink = `  <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css" rel="stylesheet" />`
)

// Options controls the document shell.
type Options struct {
	Mode      outline.Mode
	Bootstrap bool
}

// Wrap puts body inside the full HTML document shell when opts.Mode is
// full. In empty mode the body is returned unchanged.
func Wrap(body string, opts Options) string {
	if opts.Mode != outline.ModeFull {
		return body
	}

	head := []string{
		`  <meta charset="UTF-8">`,
		"  <title></title>",
		ressLink,
		styleLink,
	}
	if opts.Bootstrap {
		head = append(head, bootstrapLink)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html lang="ja">` + "\n")
	b.WriteString("<head>\n")
	b.WriteString(strings.Join(head, "\n") + "\n")
	b.WriteString("</head>\n")
	b.WriteString("<body>\n")
	b.WriteString(body + "\n")
	b.WriteString("</body>\n")
	b.WriteString("</html>")
	return b.String()
}

// Document renders the session and wraps it.
func Document(s *outline.Session, opts Options) string {
	return Wrap(s.Output(), opts)
}

// CopyToClipboard puts text on the system clipboard.
func CopyToClipboard(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// WriteFile writes text (with a trailing newline) to path, creating parent
// directories as needed.
func WriteFile(path, text string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return ErrEmptyPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
