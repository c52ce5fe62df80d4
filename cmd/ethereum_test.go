package cmd

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/switcheo/switcheo-go/internal/testdata"
	ethsign "github.com/switcheo/switcheo-go/pkg/ethereum/sign"
)

func newSignature(t *testing.T) *EthereumSignature {
	signer, err := ethsign.NewSigner(testdata.EthereumPrivateKey)
	if err != nil {
		t.Fatal(err)
	}

	signature, err := sign(signer, "verySecretMessage")
	if err != nil {
		t.Fatal(err)
	}

	return signature
}

func TestSign(t *testing.T) {
	signature := newSignature(t)

	expectedAddress := common.HexToAddress(testdata.EthereumAddress)
	if signature.Address != expectedAddress {
		t.Errorf(
			"unexpected address\nexpected: %v\nactual:   %v",
			expectedAddress.Hex(),
			signature.Address.Hex(),
		)
	}

	if signature.Message != "verySecretMessage" {
		t.Errorf("unexpected message: [%v]", signature.Message)
	}

	if signature.Version != ethereumSignatureVersion {
		t.Errorf("unexpected version: [%v]", signature.Version)
	}

	// 0x prefixed {R, S, V} with V of 27 or 28.
	v := signature.Signature[len(signature.Signature)-2:]
	if len(signature.Signature) != 132 || (v != "1b" && v != "1c") {
		t.Errorf("unexpected signature format: [%v]", signature.Signature)
	}
}

func TestVerify(t *testing.T) {
	err := verify(newSignature(t))
	if err != nil {
		t.Errorf("unexpected error: [%v]", err)
	}
}

func TestVerify_RecoveryIDWithoutOffset(t *testing.T) {
	signature := newSignature(t)

	v := signature.Signature[len(signature.Signature)-2:]
	if v == "1b" {
		signature.Signature = signature.Signature[:len(signature.Signature)-2] + "00"
	} else {
		signature.Signature = signature.Signature[:len(signature.Signature)-2] + "01"
	}

	err := verify(signature)
	if err != nil {
		t.Errorf("unexpected error: [%v]", err)
	}
}

func TestVerify_WrongAddress(t *testing.T) {
	signature := newSignature(t)
	signature.Address = common.HexToAddress("0x93df7c54c41A9D7FB17C1E8039d387a2A924708c")

	expectedError := fmt.Errorf(
		"signed by [%s], not by [0x93df7c54c41A9D7FB17C1E8039d387a2A924708c]",
		common.HexToAddress(testdata.EthereumAddress).Hex(),
	)

	err := verify(signature)
	if !reflect.DeepEqual(expectedError, err) {
		t.Errorf("unexpected error\nexpected: [%v]\nactual:   [%v]", expectedError, err)
	}
}

func TestVerify_WrongMessage(t *testing.T) {
	signature := newSignature(t)
	signature.Message = "notTheSignedMessage"

	if err := verify(signature); err == nil {
		t.Errorf("expected an error")
	}
}

func TestVerify_WrongSignatureLength(t *testing.T) {
	signature := newSignature(t)
	signature.Signature = signature.Signature[:len(signature.Signature)-2]

	expectedError := fmt.Errorf("signature has [64] bytes instead of [65]")

	err := verify(signature)
	if !reflect.DeepEqual(expectedError, err) {
		t.Errorf("unexpected error\nexpected: [%v]\nactual:   [%v]", expectedError, err)
	}
}

func TestVerify_WrongVersion(t *testing.T) {
	signature := newSignature(t)
	signature.Version = "1"

	expectedError := fmt.Errorf("signature format version [1] is not supported; only [2] is")

	err := verify(signature)
	if !reflect.DeepEqual(expectedError, err) {
		t.Errorf("unexpected error\nexpected: [%v]\nactual:   [%v]", expectedError, err)
	}
}
