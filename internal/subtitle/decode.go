package subtitle

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// text encoding a document was decoded with
type Encoding string

const (
	EncodingUTF8   Encoding = "utf-8"
	EncodingLatin1 Encoding = "latin-1"
)

// Decode returns data as UTF-8 text. Valid UTF-8 passes through unchanged;
// anything else is decoded as Latin-1, which maps every byte to a rune and
// so cannot fail.
func Decode(data []byte) (string, Encoding) {
	if _, _, err := transform.Bytes(encoding.UTF8Validator, data); err == nil {
		return string(data), EncodingUTF8
	}

	// charmap decoders never report errors
	decoded, _ := charmap.ISO8859_1.NewDecoder().Bytes(data)
	return string(decoded), EncodingLatin1
}
