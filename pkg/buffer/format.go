package buffer

import (
	"fmt"
	"strings"

	"copybuffer/pkg/logger"
)

// Options control the per-item text transforms. Header is applied before
// Attachment, so with both set the attachment block wraps the header
// together with the content. Neither transform applies to pathless items.
type Options struct {
	Header     bool
	Attachment bool
}

// Format applies the header prefix and attachment wrapper to one item.
func Format(item Item, opts Options) string {
	content := item.Content

	if opts.Header && item.Path != "" {
		content = fmt.Sprintf("=== File: %s ===\n", item.Path) + content
	}

	if opts.Attachment && item.Path != "" {
		content = fmt.Sprintf("[Attached file: %s\nContent:\n```\n%s\n```\n]", item.Path, content)
	}

	return content
}

// Combine produces the clipboard payload: each item formatted, followed by a
// single newline, in the order given.
func Combine(items []Item, opts Options) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(Format(item, opts))
		b.WriteByte('\n')
		logger.Debug().Str("path", item.Path).Msg("combined item")
	}
	return b.String()
}
