// Package clipboard provides clipboard access for text and image payloads.
// Text goes through the portable clipboard library; images are handed to a
// platform bridge executable as an image/png MIME payload so that paste
// targets receive a rendered image rather than raw file bytes.
package clipboard

import (
	atotto "github.com/atotto/clipboard"

	"copybuffer/pkg/errors"
	"copybuffer/pkg/logger"
)

// WriteText replaces the system clipboard content with s as plain text.
func WriteText(s string) error {
	if err := atotto.WriteAll(s); err != nil {
		return errors.ClipboardError(err)
	}
	logger.Debug().Int("bytes", len(s)).Msg("wrote text to clipboard")
	return nil
}

// ReadText returns the current clipboard content as plain text.
func ReadText() (string, error) {
	s, err := atotto.ReadAll()
	if err != nil {
		return "", errors.NewWithError(errors.ExitCodeClipboard, errors.ErrMsgClipboardRead, err)
	}
	return s, nil
}

// WriteImagePNG places PNG-encoded image bytes onto the system clipboard as
// an image/png payload via the platform bridge.
func WriteImagePNG(data []byte) error {
	if err := writeImagePNG(data); err != nil {
		return errors.NewWithError(errors.ExitCodeClipboard, errors.ErrMsgImageCopy, err)
	}
	logger.Debug().Int("bytes", len(data)).Msg("wrote image/png to clipboard")
	return nil
}

// Supported reports whether the clipboard library works on this platform.
func Supported() bool {
	return !atotto.Unsupported
}

// BridgeNames returns the two known clipboard-bridge executables for this
// platform, in preference order.
func BridgeNames() []string {
	return bridgeNames()
}
