package encoder

import (
	"errors"

	"github.com/CameronXie/srp-explorer/internal/domain"
)

// ErrDecode is returned when a token is not a valid encoding.
var ErrDecode = errors.New("malformed token encoding")

// Encoder converts between plaintext and tokens. Decode(Encode(x)) must return x.
type Encoder interface {
	Encode(raw string) domain.Token
	Decode(token domain.Token) (string, error)
}
