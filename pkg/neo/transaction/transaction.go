// Package transaction contains the NEO exchange transaction model and its
// canonical hex wire encoding.
//
// A transaction serializes as:
//
//	type | version | exclusive payload | attributes | inputs | outputs [| scripts]
//
// where every section count is a variable length integer and the exclusive
// payload depends on the transaction type. Scripts (witnesses) are only part
// of the broadcast form; the form which gets signed leaves them out, so it is
// always a prefix of the broadcast form.
package transaction

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/switcheo/switcheo-go/pkg/fault"
	"github.com/switcheo/switcheo-go/pkg/fixed8"
)

// Type is the one byte tag selecting the exclusive payload format.
type Type uint8

const (
	// ClaimType is a GAS claim; its payload lists the claimed outputs.
	ClaimType Type = 0x02
	// ContractType is a plain asset transfer with no exclusive payload.
	ContractType Type = 0x80
	// InvocationType runs a contract script.
	InvocationType Type = 0xd1
)

// ParseType converts a raw tag to a Type, rejecting unknown tags.
func ParseType(tag uint8) (Type, error) {
	transactionType := Type(tag)
	if !transactionType.IsKnown() {
		return 0, fault.UnsupportedTypeError{Type: tag}
	}

	return transactionType, nil
}

// IsKnown checks if the type is one of the supported transaction types.
func (t Type) IsKnown() bool {
	switch t {
	case ClaimType, ContractType, InvocationType:
		return true
	default:
		return false
	}
}

func (t Type) String() string {
	switch t {
	case ClaimType:
		return "claim"
	case ContractType:
		return "contract"
	case InvocationType:
		return "invocation"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(t))
	}
}

// AttributeUsage is the category code of a transaction attribute. It decides
// how the attribute data length is encoded.
type AttributeUsage uint8

// Attribute usages with a special encoding, plus the script usage attached by
// the exchange to every transaction.
const (
	ECDH02Usage         AttributeUsage = 0x02
	ECDH03Usage         AttributeUsage = 0x03
	ScriptUsage         AttributeUsage = 0x20
	DescriptionURLUsage AttributeUsage = 0x81
	DescriptionUsage    AttributeUsage = 0x90
	RemarkUsage         AttributeUsage = 0xf0
)

// MaxAttributeSize is the maximum size in bytes of attribute data.
const MaxAttributeSize = 65535

// Attribute is a piece of extra data attached to a transaction.
type Attribute struct {
	Usage AttributeUsage `json:"usage"`
	Data  string         `json:"data"`
}

// Input references an output of a previous transaction. Claims use the same
// structure.
type Input struct {
	PrevHash  string `json:"prevHash"`
	PrevIndex int    `json:"prevIndex"`
}

// Output transfers an amount of an asset to a script hash.
type Output struct {
	AssetID    string        `json:"assetId"`
	ScriptHash string        `json:"scriptHash"`
	Value      fixed8.Fixed8 `json:"value"`
}

// Witness proves the authorization to spend the transaction inputs.
type Witness struct {
	InvocationScript   string `json:"invocationScript"`
	VerificationScript string `json:"verificationScript"`
}

// Transaction is a NEO transaction as returned by the exchange for signing.
//
// Claims are only used by claim transactions; Script and Gas only by
// invocation transactions, Gas from version 1 on.
type Transaction struct {
	Type       Type          `json:"type"`
	Version    uint8         `json:"version"`
	Claims     []Input       `json:"claims,omitempty"`
	Script     string        `json:"script,omitempty"`
	Gas        fixed8.Fixed8 `json:"gas"`
	Attributes []Attribute   `json:"attributes"`
	Inputs     []Input       `json:"inputs"`
	Outputs    []Output      `json:"outputs"`
	Scripts    []Witness     `json:"scripts"`
}

// SignableHex returns the serialization without witnesses, which is the
// message that gets signed.
func (t *Transaction) SignableHex() (string, error) {
	return t.Serialize(false)
}

// BroadcastHex returns the serialization including witnesses, ready to be
// sent to the network.
func (t *Transaction) BroadcastHex() (string, error) {
	return t.Serialize(true)
}

// Hash returns the transaction id: the double SHA-256 of the unsigned
// serialization, displayed in reversed byte order.
func (t *Transaction) Hash() (string, error) {
	signable, err := t.SignableHex()
	if err != nil {
		return "", err
	}

	raw, err := decodeHex("transaction", signable)
	if err != nil {
		return "", err
	}

	// chainhash renders hashes byte reversed.
	return chainhash.DoubleHashH(raw).String(), nil
}
