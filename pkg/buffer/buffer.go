// Package buffer resolves command-line inputs into clipboard items and
// assembles the combined text payload. Text files and stdin are trimmed of
// surrounding whitespace; paths with a recognized raster-image extension are
// routed to the image pathway and never read as text.
package buffer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"copybuffer/pkg/errors"
	"copybuffer/pkg/logger"
)

// StdinSentinel among the positional arguments selects stdin mode.
const StdinSentinel = "-"

// Item is one resolved text input. Path is empty for stdin, in which case
// header and attachment formatting do not apply.
type Item struct {
	Path    string
	Content string
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".gif":  true,
}

// IsImagePath reports whether the path carries a recognized raster-image
// extension. The check is case-insensitive and purely lexical; the file is
// not opened.
func IsImagePath(path string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}

// NotFoundError marks a path that could not be opened. Callers skip the path
// and continue with the rest of the batch.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file '%s' not found", e.Path)
}

// ReadFile reads one text file, trimming leading and trailing whitespace.
// A missing path is reported as *NotFoundError; other failures wrap the
// underlying error.
func ReadFile(path string) (Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Item{}, &NotFoundError{Path: path}
		}
		return Item{}, errors.NewWithError(errors.ExitCodeFileOperation,
			fmt.Sprintf("failed to read file '%s'", path), err)
	}

	logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("read text file")

	return Item{
		Path:    path,
		Content: strings.TrimSpace(string(data)),
	}, nil
}

// ReadStdin consumes r to end-of-stream and returns a single pathless item
// with surrounding whitespace trimmed. It must be called at most once per
// invocation, and only when the stdin sentinel was given.
func ReadStdin(r io.Reader) (Item, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Item{}, errors.NewWithError(errors.ExitCodeFileOperation, errors.ErrMsgStdinRead, err)
	}

	logger.Debug().Int("bytes", len(data)).Msg("read stdin")

	return Item{Content: strings.TrimSpace(string(data))}, nil
}

// HasStdinSentinel reports whether any positional argument is the literal
// "-" that selects stdin mode.
func HasStdinSentinel(paths []string) bool {
	for _, p := range paths {
		if p == StdinSentinel {
			return true
		}
	}
	return false
}
