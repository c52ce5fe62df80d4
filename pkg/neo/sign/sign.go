// Package sign produces NEO signatures for exchange requests.
//
// Signatures are hex encoded (r, s) pairs without a 0x prefix. Transactions
// are signed over their serialization without witnesses; request parameters
// are signed over their encoded, alphabetically sorted JSON form.
package sign

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ipfs/go-log"

	"github.com/switcheo/switcheo-go/pkg/fault"
	"github.com/switcheo/switcheo-go/pkg/neo/transaction"
	batchsign "github.com/switcheo/switcheo-go/pkg/sign"
	"github.com/switcheo/switcheo-go/pkg/utils"
	"github.com/switcheo/switcheo-go/pkg/utils/byteutils"
)

var logger = log.Logger("switcheo-neo-sign")

const (
	messagePrefix = "010001f0"
	messageSuffix = "0000"
)

// Signer signs raw message bytes.
type Signer interface {
	Sign(message []byte) ([]byte, error)
}

// Account is a signer with a NEO script hash.
type Account interface {
	Signer
	ScriptHash() string
}

// Message is an order, make or fill returned by the exchange, carrying the
// transaction which has to be signed.
type Message struct {
	ID          string                   `json:"id"`
	Transaction *transaction.Transaction `json:"txn"`
}

// Params are the parameters of an exchange request.
type Params map[string]interface{}

// SignMessage signs a hex encoded message and returns the hex signature.
// Surrounding whitespace of the message is ignored.
func SignMessage(encodedMessage string, signer Signer) (string, error) {
	message, err := hex.DecodeString(strings.TrimSpace(encodedMessage))
	if err != nil {
		return "", fault.InvalidArgument("message", "malformed hex: [%v]", err)
	}

	signature, err := signer.Sign(message)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(signature), nil
}

// SignTransaction signs the serialization of the transaction without
// witnesses. The transaction is not modified.
func SignTransaction(tx *transaction.Transaction, signer Signer) (string, error) {
	if tx == nil {
		return "", fault.InvalidArgument("transaction", "required field is missing")
	}

	signable, err := tx.SignableHex()
	if err != nil {
		return "", fmt.Errorf("could not serialize transaction: [%w]", err)
	}

	return SignMessage(signable, signer)
}

// SignMessageArray signs the transactions of all messages and returns the
// signatures keyed by message id.
func SignMessageArray(messages []Message, signer Signer) (map[string]string, error) {
	logger.Debugf("signing [%d] messages", len(messages))

	ids := make([]string, len(messages))
	for i, message := range messages {
		ids[i] = message.ID
	}

	return batchsign.SignBatch(ids, func(index int) (string, error) {
		return SignTransaction(messages[index].Transaction, signer)
	})
}

// EncodeMessage wraps the stringified message in the envelope which NEO
// wallets sign: a fixed prefix, the message byte length as a variable length
// integer, the message bytes and a fixed suffix.
func EncodeMessage(message interface{}) (string, error) {
	stringified, err := utils.StringifyMessage(message)
	if err != nil {
		return "", err
	}

	return messagePrefix +
		byteutils.NumberToVarInt(uint64(len(stringified))) +
		hex.EncodeToString([]byte(stringified)) +
		messageSuffix, nil
}

// SignCreateParams signs the request parameters and returns a copy of them
// with the account script hash as address and the signature added. The
// signature covers the parameters as given, without the address.
func SignCreateParams(params Params, account Account) (Params, error) {
	signature, err := signParams(params, account)
	if err != nil {
		return nil, err
	}

	signed := copyParams(params)
	signed["address"] = account.ScriptHash()
	signed["signature"] = signature

	return signed, nil
}

// SignExecuteParams signs the request parameters and returns a copy of them
// with the signature added.
func SignExecuteParams(params Params, signer Signer) (Params, error) {
	signature, err := signParams(params, signer)
	if err != nil {
		return nil, err
	}

	signed := copyParams(params)
	signed["signature"] = signature

	return signed, nil
}

func signParams(params Params, signer Signer) (string, error) {
	encoded, err := EncodeMessage(params)
	if err != nil {
		return "", fmt.Errorf("could not encode params: [%w]", err)
	}

	return SignMessage(encoded, signer)
}

func copyParams(params Params) Params {
	copied := make(Params, len(params)+2)
	for key, value := range params {
		copied[key] = value
	}
	return copied
}
