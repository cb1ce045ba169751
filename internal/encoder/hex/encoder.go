package hex

import (
	"encoding/hex"
	"fmt"
	"unicode/utf8"

	"github.com/CameronXie/srp-explorer/internal/domain"
	"github.com/CameronXie/srp-explorer/internal/encoder"
)

type hexEncoder struct{}

// Encode returns the lowercase hex form of the UTF-8 bytes of text.
func (hexEncoder) Encode(text string) domain.Token {
	return domain.Token(hex.EncodeToString([]byte(text)))
}

// Decode reverses Encode. Odd length, non-hex characters and bytes that are
// not valid UTF-8 are reported as encoder.ErrDecode.
func (hexEncoder) Decode(token domain.Token) (string, error) {
	raw, err := hex.DecodeString(string(token))
	if err != nil {
		return "", fmt.Errorf("%w: %w", encoder.ErrDecode, err)
	}

	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: invalid utf-8 sequence", encoder.ErrDecode)
	}

	return string(raw), nil
}

// NewEncoder returns an Encoder backed by hexadecimal text.
func NewEncoder() encoder.Encoder {
	return hexEncoder{}
}
