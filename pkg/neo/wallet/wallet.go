// Package wallet holds NEO account keys and the identifiers derived from them.
//
// NEO accounts use secp256r1 (P-256) keys. An account is identified by the
// script hash of its single signature verification script, and displayed as
// a base58check address of that script hash.
package wallet

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcutil"

	"github.com/switcheo/switcheo-go/pkg/fault"
	"github.com/switcheo/switcheo-go/pkg/utils/byteutils"
)

const (
	privateKeySize = 32
	signatureSize  = 64

	pushPublicKeyOpcode = 0x21
	checkSigOpcode      = 0xac
)

// KeyPair is a NEO account key.
type KeyPair struct {
	privateKey *ecdsa.PrivateKey
}

// KeyPairFromHex creates a key pair from a 32-byte hex private key.
func KeyPairFromHex(privateKeyHex string) (*KeyPair, error) {
	if err := byteutils.ValidateHex("private key", privateKeyHex, privateKeySize); err != nil {
		return nil, err
	}

	privateKeyBytes, _ := hex.DecodeString(privateKeyHex)

	curve := elliptic.P256()
	d := new(big.Int).SetBytes(privateKeyBytes)
	if d.Sign() == 0 || d.Cmp(curve.Params().N) >= 0 {
		return nil, fault.InvalidArgument(
			"private key",
			"not a valid secp256r1 private key",
		)
	}

	privateKey := &ecdsa.PrivateKey{D: d}
	privateKey.PublicKey.Curve = curve
	privateKey.PublicKey.X, privateKey.PublicKey.Y = curve.ScalarBaseMult(privateKeyBytes)

	return &KeyPair{privateKey: privateKey}, nil
}

// PrivateKeyHex returns the private key as 32 bytes of hex.
func (kp *KeyPair) PrivateKeyHex() string {
	// D is always lower than the curve order, so it fits.
	padded, _ := byteutils.LeftPadTo32Bytes(kp.privateKey.D.Bytes())
	return hex.EncodeToString(padded)
}

// PublicKey returns the ECDSA public key.
func (kp *KeyPair) PublicKey() *ecdsa.PublicKey {
	return &kp.privateKey.PublicKey
}

// CompressedPublicKey returns the 33-byte compressed public key.
func (kp *KeyPair) CompressedPublicKey() []byte {
	publicKey := kp.privateKey.PublicKey

	prefix := byte(0x02)
	if publicKey.Y.Bit(0) == 1 {
		prefix = 0x03
	}

	x, _ := byteutils.LeftPadTo32Bytes(publicKey.X.Bytes())

	return append([]byte{prefix}, x...)
}

// VerificationScript returns the single signature verification script of
// the account: push the public key, then check the signature.
func (kp *KeyPair) VerificationScript() []byte {
	script := []byte{pushPublicKeyOpcode}
	script = append(script, kp.CompressedPublicKey()...)
	return append(script, checkSigOpcode)
}

// ScriptHash returns the account script hash in display order, i.e. byte
// reversed, the way the exchange API expects it.
func (kp *KeyPair) ScriptHash() string {
	return displayScriptHash(btcutil.Hash160(kp.VerificationScript()))
}

// Address returns the base58check address of the account for the given
// address version.
func (kp *KeyPair) Address(version byte) string {
	return encodeAddress(btcutil.Hash160(kp.VerificationScript()), version)
}

// Sign signs the SHA-256 digest of the message and returns the 64-byte
// signature in form (r, s).
func (kp *KeyPair) Sign(message []byte) ([]byte, error) {
	digest := sha256.Sum256(message)

	r, s, err := ecdsa.Sign(rand.Reader, kp.privateKey, digest[:])
	if err != nil {
		return nil, fmt.Errorf("could not sign message: [%w]", err)
	}

	rBytes, err := byteutils.LeftPadTo32Bytes(r.Bytes())
	if err != nil {
		return nil, err
	}

	sBytes, err := byteutils.LeftPadTo32Bytes(s.Bytes())
	if err != nil {
		return nil, err
	}

	return append(rBytes, sBytes...), nil
}

// Verify checks a signature in form (r, s) over the SHA-256 digest of the
// message.
func (kp *KeyPair) Verify(message []byte, signature []byte) bool {
	if len(signature) != signatureSize {
		return false
	}

	digest := sha256.Sum256(message)
	r := new(big.Int).SetBytes(signature[:signatureSize/2])
	s := new(big.Int).SetBytes(signature[signatureSize/2:])

	return ecdsa.Verify(&kp.privateKey.PublicKey, digest[:], r, s)
}
