package scanner

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnsupportedEncoding is returned by LookupEncoding for unknown names.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

var encodingOverrides = map[string]encoding.Encoding{
	"":         unicode.UTF8,
	"utf-8":    unicode.UTF8,
	"utf8":     unicode.UTF8,
	"ascii":    unicode.UTF8,
	"us-ascii": unicode.UTF8,
	"utf-16":   unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf16":    unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf-16le": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
}

// LookupEncoding resolves an encoding name. UTF-8 aliases and the empty name
// map to unicode.UTF8; anything else is looked up in the IANA index.
func LookupEncoding(name string) (encoding.Encoding, error) {
	if e, ok := encodingOverrides[strings.ToLower(strings.TrimSpace(name))]; ok {
		return e, nil
	}
	e, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnsupportedEncoding, name)
	}
	if e == nil {
		return nil, fmt.Errorf("%w %q: no charmap defined", ErrUnsupportedEncoding, name)
	}
	return e, nil
}

// isUTF8 reports whether e is the strict UTF-8 encoding, which is validated
// rather than decoded.
func isUTF8(e encoding.Encoding) bool {
	return e == unicode.UTF8
}
