// Package fixed8 implements amounts with exactly eight decimal places, stored
// as an integer count of 10^-8 units, and their wire encoding.
package fixed8

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/switcheo/switcheo-go/pkg/fault"
	"github.com/switcheo/switcheo-go/pkg/utils/byteutils"
)

// Decimals is the number of fractional decimal digits of a Fixed8.
const Decimals = 8

// D is the number of raw units in one whole unit.
const D int64 = 100000000

// hexSize is the size in bytes of the wire encoding.
const hexSize = 8

// Fixed8 is a decimal amount with a precision of 10^-8, stored as the number
// of 10^-8 units. Arithmetic methods rescale explicitly; never multiply or
// divide two raw values with the plain integer operators.
type Fixed8 int64

var (
	// Zero represents an amount of zero.
	Zero = Fixed8(0)
	// One represents one whole unit.
	One = Fixed8(D)
	// MaxValue is the largest representable amount.
	MaxValue = Fixed8(math.MaxInt64)
	// MinValue is the smallest representable amount.
	MinValue = Fixed8(math.MinInt64)

	bigD = big.NewInt(D)
)

// Satoshi creates a Fixed8 from a raw number of 10^-8 units.
func Satoshi(units int64) Fixed8 {
	return Fixed8(units)
}

// FromInt creates a Fixed8 from a number of whole units.
func FromInt(whole int64) (Fixed8, error) {
	return fromBigInt(new(big.Int).Mul(big.NewInt(whole), bigD))
}

// FromFloat creates a Fixed8 from a float. The float is first formatted with
// eight decimal places, which is also where any rounding happens; the
// formatted decimal is then converted without further loss.
func FromFloat(value float64) (Fixed8, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Zero, fault.InvalidArgument(
			"value",
			"[%v] is not a finite number",
			value,
		)
	}

	return Parse(strconv.FormatFloat(value, 'f', Decimals, 64))
}

// Parse creates a Fixed8 from its decimal string representation. Exponent
// notation such as "1e-08" is accepted. Digits below the eighth decimal place
// are rounded half to even.
func Parse(value string) (Fixed8, error) {
	trimmed := strings.TrimSpace(value)

	// big.Rat also reads fractions like "1/3", which are no decimal amounts.
	if strings.Contains(trimmed, "/") {
		return Zero, fault.InvalidArgument(
			"value",
			"[%s] is not a decimal number",
			value,
		)
	}

	rational, ok := new(big.Rat).SetString(trimmed)
	if !ok {
		return Zero, fault.InvalidArgument(
			"value",
			"[%s] is not a decimal number",
			value,
		)
	}

	scaled := new(big.Int).Mul(rational.Num(), bigD)

	return fromBigInt(roundQuo(scaled, rational.Denom()))
}

// Value returns the raw number of 10^-8 units.
func (f Fixed8) Value() int64 {
	return int64(f)
}

// ToHex renders the amount as 8 bytes of big-endian hex. Negative amounts have
// no wire encoding.
func (f Fixed8) ToHex() (string, error) {
	if f < 0 {
		return "", fault.InvalidArgument(
			"value",
			"negative amount [%v] cannot be encoded",
			f,
		)
	}

	return byteutils.NumberToHex(uint64(f), hexSize, false)
}

// ToReverseHex renders the amount as 8 bytes of little-endian hex, the order
// used on the wire.
func (f Fixed8) ToReverseHex() (string, error) {
	bigEndian, err := f.ToHex()
	if err != nil {
		return "", err
	}

	return byteutils.ReverseHex(bigEndian)
}

// NumToFixedHex converts a number to its little-endian Fixed8 hex encoding
// limited to the given number of bytes. The size has to be a whole number;
// sizes over 8 bytes return the full encoding.
func NumToFixedHex(number float64, size float64) (string, error) {
	if size != math.Trunc(size) || math.IsInf(size, 0) {
		return "", fault.InvalidArgument(
			"size",
			"Fixed8 size [%v] is not a whole number",
			size,
		)
	}
	if size < 0 {
		return "", fault.InvalidArgument(
			"size",
			"Fixed8 size [%v] is negative",
			size,
		)
	}

	value, err := FromFloat(number)
	if err != nil {
		return "", err
	}

	hexString, err := value.ToReverseHex()
	if err != nil {
		return "", err
	}

	if size*2 < float64(len(hexString)) {
		return hexString[:int(size)*2], nil
	}

	return hexString, nil
}

// String renders the decimal value without trailing zeros, e.g. "0.0205".
func (f Fixed8) String() string {
	value := big.NewInt(int64(f))

	sign := ""
	if value.Sign() < 0 {
		sign = "-"
		value.Neg(value)
	}

	whole, fraction := new(big.Int).QuoRem(value, bigD, new(big.Int))
	if fraction.Sign() == 0 {
		return sign + whole.String()
	}

	fractionDigits := fraction.String()
	fractionDigits = strings.Repeat("0", Decimals-len(fractionDigits)) + fractionDigits
	fractionDigits = strings.TrimRight(fractionDigits, "0")

	return sign + whole.String() + "." + fractionDigits
}

// ToInt returns the number of whole units, truncated toward zero.
func (f Fixed8) ToInt() int64 {
	return int64(f) / D
}

// Floor returns the largest whole amount not greater than f.
func (f Fixed8) Floor() Fixed8 {
	remainder := int64(f) % D
	if remainder < 0 {
		remainder += D
	}
	return f - Fixed8(remainder)
}

// Ceil returns the smallest whole amount not lower than f. It saturates at the
// largest whole amount if rounding up would overflow.
func (f Fixed8) Ceil() Fixed8 {
	floor := f.Floor()
	if floor == f {
		return f
	}
	if floor > MaxValue-Fixed8(D) {
		return floor
	}
	return floor + Fixed8(D)
}

// MarshalJSON encodes the amount as a JSON number.
func (f Fixed8) MarshalJSON() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalJSON decodes the amount from a JSON number or a quoted decimal
// string, without passing through a float.
func (f *Fixed8) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	text := strings.Trim(string(data), `"`)

	value, err := Parse(text)
	if err != nil {
		return err
	}

	*f = value
	return nil
}

func fromBigInt(units *big.Int) (Fixed8, error) {
	if !units.IsInt64() {
		return Zero, fault.InvalidArgument(
			"value",
			"[%v] units overflow Fixed8",
			units,
		)
	}

	return Fixed8(units.Int64()), nil
}

// roundQuo divides and rounds half to even. The denominator has to be
// positive.
func roundQuo(numerator, denominator *big.Int) *big.Int {
	quotient, remainder := new(big.Int).QuoRem(
		numerator,
		denominator,
		new(big.Int),
	)

	doubled := new(big.Int).Abs(remainder)
	doubled.Lsh(doubled, 1)

	switch doubled.Cmp(denominator) {
	case 1:
		quotient.Add(quotient, big.NewInt(int64(numerator.Sign())))
	case 0:
		if quotient.Bit(0) == 1 {
			quotient.Add(quotient, big.NewInt(int64(numerator.Sign())))
		}
	}

	return quotient
}
