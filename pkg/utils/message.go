package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// StringifyMessage renders a message as compact JSON with object keys sorted
// alphabetically and every character outside of printable ASCII escaped as
// \uXXXX. This is the exact text both signing paths sign, so it has to be
// stable for a given message regardless of field or map ordering.
//
// Numbers are carried through as their original decimal text; they are never
// converted to floats.
func StringifyMessage(message interface{}) (string, error) {
	raw, err := json.Marshal(message)
	if err != nil {
		return "", fmt.Errorf("could not marshal message: [%w]", err)
	}

	// Round trip through a generic value so structs and maps both end up as
	// maps, which encoding/json always writes with sorted keys.
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var generic interface{}
	if err := decoder.Decode(&generic); err != nil {
		return "", fmt.Errorf("could not decode message: [%w]", err)
	}

	buffer := &bytes.Buffer{}
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(generic); err != nil {
		return "", fmt.Errorf("could not encode message: [%w]", err)
	}

	return escapeNonASCII(bytes.TrimRight(buffer.Bytes(), "\n")), nil
}

func escapeNonASCII(encoded []byte) string {
	var builder bytes.Buffer
	builder.Grow(len(encoded))

	for len(encoded) > 0 {
		r, size := utf8.DecodeRune(encoded)
		encoded = encoded[size:]

		switch {
		case r < 0x7f:
			builder.WriteRune(r)
		case r > 0xffff:
			r -= 0x10000
			fmt.Fprintf(&builder, `\u%04x\u%04x`, 0xd800+(r>>10), 0xdc00+(r&0x3ff))
		default:
			fmt.Fprintf(&builder, `\u%04x`, r)
		}
	}

	return builder.String()
}
