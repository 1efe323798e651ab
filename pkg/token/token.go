// Package token counts text tokens under the cl100k_base byte-pair
// encoding, the vocabulary used by recent OpenAI chat models. Counts are
// deterministic for a given input, which makes them suitable for estimating
// prompt cost before pasting.
package token

import (
	"sync"

	"copybuffer/pkg/errors"

	"github.com/pkoukk/tiktoken-go"
)

// Encoding is the fixed vocabulary used for all counts.
const Encoding = "cl100k_base"

// Counter maps text to a token count under a fixed encoding.
type Counter interface {
	Count(text string) (int, error)
}

type tiktokenCounter struct {
	once sync.Once
	enc  *tiktoken.Tiktoken
	err  error
}

// NewCounter returns a Counter backed by the cl100k_base encoder. The
// encoder is loaded lazily on first use and cached for the process lifetime.
func NewCounter() Counter {
	return &tiktokenCounter{}
}

func (c *tiktokenCounter) Count(text string) (int, error) {
	c.once.Do(func() {
		c.enc, c.err = tiktoken.GetEncoding(Encoding)
	})
	if c.err != nil {
		return 0, errors.TokenizerError(c.err)
	}
	return len(c.enc.Encode(text, nil, nil)), nil
}
