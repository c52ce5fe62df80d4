package fixed8

import (
	"math/big"

	"github.com/switcheo/switcheo-go/pkg/fault"
)

// Add returns f + other.
func (f Fixed8) Add(other Fixed8) (Fixed8, error) {
	return fromBigInt(new(big.Int).Add(f.bigInt(), other.bigInt()))
}

// Sub returns f - other.
func (f Fixed8) Sub(other Fixed8) (Fixed8, error) {
	return fromBigInt(new(big.Int).Sub(f.bigInt(), other.bigInt()))
}

// Neg returns -f.
func (f Fixed8) Neg() (Fixed8, error) {
	return fromBigInt(new(big.Int).Neg(f.bigInt()))
}

// Mul returns f * other, rescaled back to eight decimal places and rounded
// half to even.
func (f Fixed8) Mul(other Fixed8) (Fixed8, error) {
	product := new(big.Int).Mul(f.bigInt(), other.bigInt())
	return fromBigInt(roundQuo(product, bigD))
}

// Div returns f / other with eight decimal places, rounded half to even.
func (f Fixed8) Div(other Fixed8) (Fixed8, error) {
	if other == 0 {
		return Zero, fault.InvalidArgument("divisor", "division by zero")
	}

	numerator := new(big.Int).Mul(f.bigInt(), bigD)
	denominator := other.bigInt()
	if denominator.Sign() < 0 {
		numerator.Neg(numerator)
		denominator.Neg(denominator)
	}

	return fromBigInt(roundQuo(numerator, denominator))
}

// FloorDiv returns the whole number of times other fits in f, rounded toward
// negative infinity.
func (f Fixed8) FloorDiv(other Fixed8) (Fixed8, error) {
	if other == 0 {
		return Zero, fault.InvalidArgument("divisor", "division by zero")
	}

	quotient := new(big.Int)
	modulus := new(big.Int)
	// Euclidean division; adjust to floor for negative divisors.
	quotient.DivMod(f.bigInt(), other.bigInt(), modulus)
	if other < 0 && modulus.Sign() != 0 {
		quotient.Sub(quotient, big.NewInt(1))
	}

	return fromBigInt(quotient.Mul(quotient, bigD))
}

// Mod returns the remainder of FloorDiv; it has the sign of the divisor.
func (f Fixed8) Mod(other Fixed8) (Fixed8, error) {
	if other == 0 {
		return Zero, fault.InvalidArgument("divisor", "division by zero")
	}

	remainder := int64(f) % int64(other)
	if remainder != 0 && (remainder < 0) != (other < 0) {
		remainder += int64(other)
	}

	return Fixed8(remainder), nil
}

// Pow raises f to an integer power by square-and-multiply. Each step is
// rescaled like Mul; negative exponents divide one by the positive power.
func (f Fixed8) Pow(exponent int) (Fixed8, error) {
	remaining := exponent
	negative := remaining < 0
	if negative {
		remaining = -remaining
		if remaining < 0 {
			return Zero, fault.InvalidArgument(
				"exponent",
				"[%d] is out of range",
				exponent,
			)
		}
	}

	result := One
	base := f
	for remaining > 0 {
		var err error
		if remaining&1 == 1 {
			result, err = result.Mul(base)
			if err != nil {
				return Zero, err
			}
		}

		remaining >>= 1
		if remaining > 0 {
			base, err = base.Mul(base)
			if err != nil {
				return Zero, err
			}
		}
	}

	if negative {
		return One.Div(result)
	}

	return result, nil
}

// Cmp compares f and other and returns -1, 0 or +1.
func (f Fixed8) Cmp(other Fixed8) int {
	switch {
	case f < other:
		return -1
	case f > other:
		return 1
	default:
		return 0
	}
}

// Equal checks if both amounts are the same.
func (f Fixed8) Equal(other Fixed8) bool {
	return f == other
}

// LessThan checks if f is lower than other.
func (f Fixed8) LessThan(other Fixed8) bool {
	return f < other
}

// GreaterThan checks if f is greater than other.
func (f Fixed8) GreaterThan(other Fixed8) bool {
	return f > other
}

func (f Fixed8) bigInt() *big.Int {
	return big.NewInt(int64(f))
}
