// Package byteutils provides helper utilities for working with bytes and their
// hexadecimal representation.
package byteutils

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/switcheo/switcheo-go/pkg/fault"
)

// MaxNumberSize is the widest fixed-size number NumberToHex can encode.
const MaxNumberSize = 8

// NumberToHex renders a number as a big-endian hexadecimal string of exactly
// size bytes, left padded with zeros. If littleEndian is set, the byte order
// of the result is reversed. A number which does not fit in size bytes is
// rejected instead of being truncated.
func NumberToHex(number uint64, size int, littleEndian bool) (string, error) {
	if size < 1 || size > MaxNumberSize {
		return "", fault.InvalidArgument(
			"size",
			"[%d] is outside of range [1, %d]",
			size,
			MaxNumberSize,
		)
	}

	hexString := strconv.FormatUint(number, 16)
	width := size * 2
	if len(hexString) > width {
		return "", fault.InvalidArgument(
			"number",
			"[%d] does not fit in [%d] bytes",
			number,
			size,
		)
	}

	hexString = strings.Repeat("0", width-len(hexString)) + hexString

	if littleEndian {
		return ReverseHex(hexString)
	}

	return hexString, nil
}

// NumberToVarInt renders a number as a variable length integer. Values lower
// than 0xfd take a single byte; larger values are prefixed with 0xfd, 0xfe or
// 0xff followed by the value as 2, 4 or 8 bytes in little-endian order.
func NumberToVarInt(number uint64) string {
	var prefix string
	var size int

	switch {
	case number < 0xfd:
		return fmt.Sprintf("%02x", number)
	case number <= math.MaxUint16:
		prefix, size = "fd", 2
	case number <= math.MaxUint32:
		prefix, size = "fe", 4
	default:
		prefix, size = "ff", 8
	}

	// the number always fits the selected size
	encoded, _ := NumberToHex(number, size, true)

	return prefix + encoded
}

// ReverseHex reverses the order of bytes in a hexadecimal string. Characters
// within a byte keep their order, so "abcd" becomes "cdab".
func ReverseHex(hexString string) (string, error) {
	if len(hexString)%2 != 0 {
		return "", fault.InvalidArgument(
			"hex",
			"odd length [%d] of [%s]",
			len(hexString),
			hexString,
		)
	}

	var builder strings.Builder
	builder.Grow(len(hexString))

	for i := len(hexString); i > 0; i -= 2 {
		builder.WriteString(hexString[i-2 : i])
	}

	return builder.String(), nil
}

// ByteLength returns the number of bytes encoded by a hexadecimal string.
func ByteLength(hexString string) int {
	return len(hexString) / 2
}

// ValidateHex checks if the value is a well formed hexadecimal string. When
// expectedSize is not negative the value has to encode exactly that many
// bytes.
func ValidateHex(argument string, value string, expectedSize int) error {
	if len(value)%2 != 0 {
		return fault.InvalidArgument(argument, "odd hex length [%d]", len(value))
	}

	if _, err := hex.DecodeString(value); err != nil {
		return fault.InvalidArgument(argument, "malformed hex: [%v]", err)
	}

	if expectedSize >= 0 && ByteLength(value) != expectedSize {
		return fault.InvalidArgument(
			argument,
			"expected [%d] bytes, has [%d]",
			expectedSize,
			ByteLength(value),
		)
	}

	return nil
}

// LeftPadTo32Bytes appends zeros to bytes slice to make it exactly 32 bytes long.
func LeftPadTo32Bytes(bytes []byte) ([]byte, error) {
	expectedByteLen := 32
	if len(bytes) > expectedByteLen {
		return nil, fmt.Errorf(
			"cannot pad %v byte array to %v bytes", len(bytes), expectedByteLen,
		)
	}

	result := make([]byte, 0)
	if len(bytes) < expectedByteLen {
		result = make([]byte, expectedByteLen-len(bytes))
	}
	result = append(result, bytes...)

	return result, nil
}
