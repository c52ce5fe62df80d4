package sign

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/switcheo/switcheo-go/pkg/fault"
)

func TestSignBatch(t *testing.T) {
	ids := []string{"a", "b", "c"}

	signatures, err := SignBatch(ids, func(index int) (string, error) {
		return strings.Repeat(ids[index], 2), nil
	})
	if err != nil {
		t.Fatal(err)
	}

	expected := map[string]string{"a": "aa", "b": "bb", "c": "cc"}
	if !reflect.DeepEqual(expected, signatures) {
		t.Errorf(
			"unexpected signatures\nexpected: [%v]\nactual:   [%v]",
			expected,
			signatures,
		)
	}
}

func TestSignBatchEmpty(t *testing.T) {
	signatures, err := SignBatch([]string{}, func(index int) (string, error) {
		t.Fatalf("unexpected call for index [%v]", index)
		return "", nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(signatures) != 0 {
		t.Errorf("unexpected signatures: [%v]", signatures)
	}
}

func TestSignBatchRejectsInvalidIds(t *testing.T) {
	var tests = map[string]struct {
		ids           []string
		expectedError string
	}{
		"duplicate": {
			ids:           []string{"a", "b", "a"},
			expectedError: "messages [0] and [2] share id [a]",
		},
		"missing": {
			ids:           []string{"a", ""},
			expectedError: "message [1] has no id",
		},
	}

	for testName, test := range tests {
		t.Run(testName, func(t *testing.T) {
			_, err := SignBatch(test.ids, func(index int) (string, error) {
				return "signature", nil
			})
			if err == nil || err.Error() != test.expectedError {
				t.Errorf(
					"unexpected error\nexpected: [%v]\nactual:   [%v]",
					test.expectedError,
					err,
				)
			}
		})
	}
}

func TestSignBatchReturnsFirstFailure(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}

	signatures, err := SignBatch(ids, func(index int) (string, error) {
		if index >= 1 {
			return "", fmt.Errorf("failure %d", index)
		}
		return "signature", nil
	})

	expectedError := "could not sign message [b]: [failure 1]"
	if err == nil || err.Error() != expectedError {
		t.Errorf(
			"unexpected error\nexpected: [%v]\nactual:   [%v]",
			expectedError,
			err,
		)
	}

	if signatures != nil {
		t.Errorf("unexpected signatures: [%v]", signatures)
	}
}

func TestSignBatchKeepsCause(t *testing.T) {
	cause := fault.InvalidArgument("message", "malformed hex")

	_, err := SignBatch([]string{"a"}, func(index int) (string, error) {
		return "", cause
	})

	if !errors.Is(err, cause) {
		t.Errorf(
			"unexpected error cause\nexpected: [%v]\nactual:   [%v]",
			cause,
			err,
		)
	}

	if !fault.IsInvalidArgument(err) {
		t.Errorf("unexpected error class: [%v]", err)
	}
}
