package testutils

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// VerifyEthereumSignature validates that a hex signature in form
// (r, s, v) with v in {27, 28} is a valid ethereum signature of the hash.
// `SigToPub` is a wrapper on `Ecrecover` that allows us to validate a
// signature in the same way as it's done on-chain, we extract public key from
// the signature and compare its address with the signer's address.
func VerifyEthereumSignature(
	t *testing.T,
	hash []byte,
	signatureHex string,
	expectedAddress string,
) {
	if !strings.HasPrefix(signatureHex, "0x") {
		signatureHex = "0x" + signatureHex
	}

	signature, err := hexutil.Decode(signatureHex)
	if err != nil {
		t.Fatalf("failed to decode signature: [%v]", err)
	}

	if len(signature) != crypto.SignatureLength {
		t.Fatalf(
			"unexpected signature length\nexpected: [%v]\nactual:   [%v]",
			crypto.SignatureLength,
			len(signature),
		)
	}

	if v := signature[crypto.RecoveryIDOffset]; v != 27 && v != 28 {
		t.Fatalf("unexpected recovery id [%v]", v)
	}
	signature[crypto.RecoveryIDOffset] -= 27

	publicKey, err := crypto.SigToPub(hash, signature)
	if err != nil {
		t.Fatalf("failed to get public key from signature: [%v]", err)
	}

	address := strings.ToLower(crypto.PubkeyToAddress(*publicKey).Hex())
	if address != strings.ToLower(expectedAddress) {
		t.Errorf(
			"invalid signer address:\nexpected: [%v]\nactual:   [%v]\n",
			expectedAddress,
			address,
		)
	}
}

// VerifyNeoSignature validates that a hex signature in form (r, s) is a valid
// secp256r1 signature of the SHA-256 digest of the message.
func VerifyNeoSignature(
	t *testing.T,
	message []byte,
	signatureHex string,
	publicKey *ecdsa.PublicKey,
) {
	signature, err := hex.DecodeString(signatureHex)
	if err != nil {
		t.Fatalf("failed to decode signature: [%v]", err)
	}

	if len(signature) != 64 {
		t.Fatalf(
			"unexpected signature length\nexpected: [64]\nactual:   [%v]",
			len(signature),
		)
	}

	r := new(big.Int).SetBytes(signature[:32])
	s := new(big.Int).SetBytes(signature[32:])
	digest := sha256.Sum256(message)

	if !ecdsa.Verify(publicKey, digest[:], r, s) {
		t.Errorf("invalid signature [%v] of message [%x]", signatureHex, message)
	}
}
