package fixed8

import (
	"testing"

	"github.com/switcheo/switcheo-go/pkg/fault"
)

func mustParse(t *testing.T, value string) Fixed8 {
	parsed, err := Parse(value)
	if err != nil {
		t.Fatal(err)
	}
	return parsed
}

func TestArithmetic(t *testing.T) {
	var tests = map[string]struct {
		operation func(a, b Fixed8) (Fixed8, error)
		a         string
		b         string
		expected  string
	}{
		"add":                     {Fixed8.Add, "1.5", "0.25", "1.75"},
		"sub":                     {Fixed8.Sub, "1.5", "2", "-0.5"},
		"mul":                     {Fixed8.Mul, "1.5", "2", "3"},
		"mul fractions":           {Fixed8.Mul, "0.5", "0.5", "0.25"},
		"mul rounds to even":      {Fixed8.Mul, "0.00000001", "0.5", "0"},
		"mul negative":            {Fixed8.Mul, "-2", "3", "-6"},
		"div":                     {Fixed8.Div, "3", "2", "1.5"},
		"div repeating":           {Fixed8.Div, "1", "3", "0.33333333"},
		"div rounds":              {Fixed8.Div, "2", "3", "0.66666667"},
		"div negative divisor":    {Fixed8.Div, "3", "-2", "-1.5"},
		"floor div":               {Fixed8.FloorDiv, "7", "2", "3"},
		"floor div negative":      {Fixed8.FloorDiv, "-7", "2", "-4"},
		"floor div negative both": {Fixed8.FloorDiv, "-7", "-2", "3"},
		"floor div divisor only":  {Fixed8.FloorDiv, "7", "-2", "-4"},
		"floor div fractions":     {Fixed8.FloorDiv, "1", "0.3", "3"},
		"mod":                     {Fixed8.Mod, "7", "2", "1"},
		"mod fractions":           {Fixed8.Mod, "0.5", "0.3", "0.2"},
		"mod negative dividend":   {Fixed8.Mod, "-7", "2", "1"},
		"mod negative divisor":    {Fixed8.Mod, "7", "-2", "-1"},
	}

	for testName, test := range tests {
		t.Run(testName, func(t *testing.T) {
			actual, err := test.operation(mustParse(t, test.a), mustParse(t, test.b))
			if err != nil {
				t.Fatal(err)
			}

			if actual.String() != test.expected {
				t.Errorf(
					"unexpected result\nexpected: [%v]\nactual:   [%v]",
					test.expected,
					actual,
				)
			}
		})
	}
}

func TestMulIsScaled(t *testing.T) {
	two, _ := FromInt(2)
	three, _ := FromInt(3)

	product, err := two.Mul(three)
	if err != nil {
		t.Fatal(err)
	}

	if product.Value() != 600000000 {
		t.Errorf(
			"unexpected raw product\nexpected: [600000000]\nactual:   [%v]",
			product.Value(),
		)
	}
}

func TestNeg(t *testing.T) {
	negated, err := Satoshi(150000000).Neg()
	if err != nil {
		t.Fatal(err)
	}
	if negated != Satoshi(-150000000) {
		t.Errorf("unexpected negation\nexpected: [-1.5]\nactual:   [%v]", negated)
	}

	if _, err := MinValue.Neg(); !fault.IsInvalidArgument(err) {
		t.Errorf("unexpected error\nexpected: [invalid argument]\nactual:   [%v]", err)
	}
}

func TestPow(t *testing.T) {
	var tests = map[string]struct {
		base     string
		exponent int
		expected string
	}{
		"square":            {"1.1", 2, "1.21"},
		"cube":              {"2", 3, "8"},
		"zero exponent":     {"5", 0, "1"},
		"negative exponent": {"2", -1, "0.5"},
		"negative base":     {"-2", 3, "-8"},
		"odd exponent":      {"1.5", 5, "7.59375"},
		"large exponent":    {"1", 1 << 30, "1"},
		"large negative":    {"1", -(1 << 30), "1"},
	}

	for testName, test := range tests {
		t.Run(testName, func(t *testing.T) {
			actual, err := mustParse(t, test.base).Pow(test.exponent)
			if err != nil {
				t.Fatal(err)
			}

			if actual.String() != test.expected {
				t.Errorf(
					"unexpected result\nexpected: [%v]\nactual:   [%v]",
					test.expected,
					actual,
				)
			}
		})
	}
}

func TestArithmeticErrors(t *testing.T) {
	two, _ := FromInt(2)
	minInt := -int(^uint(0)>>1) - 1

	var tests = map[string]func() (Fixed8, error){
		"add overflow":   func() (Fixed8, error) { return MaxValue.Add(Satoshi(1)) },
		"sub overflow":   func() (Fixed8, error) { return MinValue.Sub(Satoshi(1)) },
		"mul overflow":   func() (Fixed8, error) { return MaxValue.Mul(two) },
		"div by zero":    func() (Fixed8, error) { return two.Div(Zero) },
		"floor div zero": func() (Fixed8, error) { return two.FloorDiv(Zero) },
		"mod by zero":    func() (Fixed8, error) { return two.Mod(Zero) },
		"pow overflow":   func() (Fixed8, error) { return MaxValue.Pow(2) },
		"pow of zero":    func() (Fixed8, error) { return Zero.Pow(-1) },
		"pow min int":    func() (Fixed8, error) { return two.Pow(minInt) },
	}

	for testName, operation := range tests {
		t.Run(testName, func(t *testing.T) {
			_, err := operation()
			if !fault.IsInvalidArgument(err) {
				t.Errorf(
					"unexpected error\nexpected: [invalid argument]\nactual:   [%v]",
					err,
				)
			}
		})
	}
}

func TestComparison(t *testing.T) {
	small := Satoshi(1)
	large := Satoshi(2)

	if small.Cmp(large) != -1 || large.Cmp(small) != 1 || small.Cmp(small) != 0 {
		t.Errorf("unexpected comparison result")
	}
	if !small.LessThan(large) || small.GreaterThan(large) {
		t.Errorf("unexpected ordering")
	}
	if !small.Equal(Satoshi(1)) || small.Equal(large) {
		t.Errorf("unexpected equality")
	}
}
