// Package sign produces Ethereum signatures for exchange requests.
//
// Signatures are 65 bytes in form (r, s, v) with v in {27, 28}. Request
// parameters are signed as personal messages; transaction digests prepared by
// the exchange are signed as they are. Signatures over digests are returned
// with a 0x prefix, signatures over parameters without one, which is what the
// exchange API expects for each.
package sign

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ipfs/go-log"

	"github.com/switcheo/switcheo-go/pkg/fault"
	batchsign "github.com/switcheo/switcheo-go/pkg/sign"
	"github.com/switcheo/switcheo-go/pkg/utils"
)

var logger = log.Logger("switcheo-eth-sign")

const (
	digestSize = 32

	// Offset added to the recovery id, as done by eth_sign.
	recoveryIDOffset = 27
)

// Signer signs with an Ethereum private key.
type Signer struct {
	privateKey *ecdsa.PrivateKey
}

// Message is an order, make or fill returned by the exchange, carrying the
// digest of the transaction which has to be signed.
type Message struct {
	ID          string `json:"id"`
	Transaction struct {
		SHA256 string `json:"sha256"`
	} `json:"txn"`
}

// Params are the parameters of an exchange request.
type Params map[string]interface{}

// NewSigner creates a signer from a hex private key, with or without a 0x
// prefix.
func NewSigner(privateKeyHex string) (*Signer, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fault.InvalidArgument("private key", "%v", err)
	}

	return NewSignerFromKey(privateKey), nil
}

// NewSignerFromKey creates a signer from an existing private key, e.g. one
// decrypted from a key file.
func NewSignerFromKey(privateKey *ecdsa.PrivateKey) *Signer {
	return &Signer{privateKey: privateKey}
}

// Address returns the signer address as lowercase hex with a 0x prefix.
func (s *Signer) Address() string {
	return strings.ToLower(crypto.PubkeyToAddress(s.privateKey.PublicKey).Hex())
}

// PublicKey returns the signer's public key.
func (s *Signer) PublicKey() *ecdsa.PublicKey {
	return &s.privateKey.PublicKey
}

// Sign signs a 32-byte digest and returns the signature in form (r, s, v).
func (s *Signer) Sign(digest []byte) ([]byte, error) {
	if len(digest) != digestSize {
		return nil, fault.InvalidArgument(
			"digest",
			"expected [%d] bytes, has [%d]",
			digestSize,
			len(digest),
		)
	}

	signature, err := crypto.Sign(digest, s.privateKey)
	if err != nil {
		return nil, fmt.Errorf("could not sign digest: [%w]", err)
	}

	signature[crypto.RecoveryIDOffset] += recoveryIDOffset

	return signature, nil
}

// SignHash signs a hex digest, with or without a 0x prefix, and returns the
// signature as hex with a 0x prefix.
func (s *Signer) SignHash(digestHex string) (string, error) {
	digest, err := decodeDigest(digestHex)
	if err != nil {
		return "", err
	}

	signature, err := s.Sign(digest)
	if err != nil {
		return "", err
	}

	return hexutil.Encode(signature), nil
}

// SignTransactionArray signs the transaction digests of all messages and
// returns the signatures keyed by message id.
func (s *Signer) SignTransactionArray(messages []Message) (map[string]string, error) {
	logger.Debugf("signing [%d] messages for [%s]", len(messages), s.Address())

	ids := make([]string, len(messages))
	for i, message := range messages {
		ids[i] = message.ID
	}

	return batchsign.SignBatch(ids, func(index int) (string, error) {
		return s.SignHash(messages[index].Transaction.SHA256)
	})
}

// SignCreateParams signs the stringified request parameters as a personal
// message and returns a copy of them with the signer address and the
// signature added.
func (s *Signer) SignCreateParams(params Params) (Params, error) {
	stringified, err := utils.StringifyMessage(params)
	if err != nil {
		return nil, fmt.Errorf("could not stringify params: [%w]", err)
	}

	signature, err := s.Sign(PersonalMessageHash([]byte(stringified)))
	if err != nil {
		return nil, err
	}

	signed := make(Params, len(params)+2)
	for key, value := range params {
		signed[key] = value
	}
	signed["address"] = s.Address()
	signed["signature"] = hex.EncodeToString(signature)

	return signed, nil
}

// SignExecuteParams signs the digest of a transaction prepared by the
// exchange and returns the parameters broadcasting it.
func (s *Signer) SignExecuteParams(transactionSHA256 string) (Params, error) {
	signature, err := s.SignHash(transactionSHA256)
	if err != nil {
		return nil, err
	}

	return Params{"signature": signature}, nil
}

// PersonalMessageHash returns the Keccak-256 hash of the message wrapped in
// the personal message envelope used by eth_sign.
func PersonalMessageHash(message []byte) []byte {
	return accounts.TextHash(message)
}

func decodeDigest(digestHex string) ([]byte, error) {
	if !strings.HasPrefix(digestHex, "0x") {
		digestHex = "0x" + digestHex
	}

	digest, err := hexutil.Decode(digestHex)
	if err != nil {
		return nil, fault.InvalidArgument("digest", "[%s]: %v", digestHex, err)
	}

	return digest, nil
}
