package event

import (
	"encoding/base64"
	"mime"
	"strings"
	"unicode/utf8"
)

// textMediaTypes are media types whose payloads are UTF-8 text by
// convention even without an explicit charset parameter.
var textMediaTypes = map[string]bool{
	"application/json":                  true,
	"application/javascript":            true,
	"application/xml":                   true,
	"application/x-www-form-urlencoded": true,
}

// utf8Charsets are charset values that are safe to ship as plain text in a
// JSON event body.
var utf8Charsets = map[string]bool{
	"utf-8":    true,
	"utf8":     true,
	"us-ascii": true,
	"ascii":    true,
}

// IsBinary reports whether a body must be base64-encoded before it can be
// carried in an API Gateway event. When no definitive signal exists the
// body is treated as binary, so arbitrary payloads are never mangled.
func IsBinary(contentType string, body []byte) bool {
	if len(body) == 0 {
		return false
	}
	if !utf8.Valid(body) {
		return true
	}

	if contentType == "" {
		return true
	}
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return true
	}
	if charset, ok := params["charset"]; ok {
		return !utf8Charsets[strings.ToLower(charset)]
	}
	if strings.HasPrefix(mediaType, "text/") {
		return false
	}
	if strings.HasSuffix(mediaType, "+json") || strings.HasSuffix(mediaType, "+xml") {
		return false
	}
	return !textMediaTypes[mediaType]
}

// EncodeBody converts body bytes into the string form carried by an
// outgoing event: pass-through for text, standard padded base64 for binary.
func EncodeBody(body []byte, binary bool) string {
	if binary {
		return base64.StdEncoding.EncodeToString(body)
	}
	return string(body)
}

// DecodeBody inverts EncodeBody. It fails when the binary flag claims
// base64 but the string is not valid base64.
func DecodeBody(body string, binary bool) ([]byte, error) {
	if !binary {
		return []byte(body), nil
	}
	decoded, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, NewConversionError("DecodeBody", ErrInvalidEncoding)
	}
	return decoded, nil
}
