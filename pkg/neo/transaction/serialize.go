package transaction

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/switcheo/switcheo-go/pkg/fault"
	"github.com/switcheo/switcheo-go/pkg/utils/byteutils"
)

const (
	hashSize       = 32
	scriptHashSize = 20

	// ECDH attribute data is cut to this window of hex characters.
	ecdhDataStart = 2
	ecdhDataEnd   = 64
)

// Serialize renders the transaction in its canonical hex form. Witnesses are
// appended only when signed is set and there is at least one of them.
func (t *Transaction) Serialize(signed bool) (string, error) {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("%02x", uint8(t.Type)))
	builder.WriteString(fmt.Sprintf("%02x", t.Version))

	exclusive, err := serializeExclusive(t)
	if err != nil {
		return "", err
	}
	builder.WriteString(exclusive)

	builder.WriteString(byteutils.NumberToVarInt(uint64(len(t.Attributes))))
	for i, attribute := range t.Attributes {
		serialized, err := SerializeAttribute(attribute)
		if err != nil {
			return "", errors.Wrapf(err, "could not serialize attribute [%d]", i)
		}
		builder.WriteString(serialized)
	}

	builder.WriteString(byteutils.NumberToVarInt(uint64(len(t.Inputs))))
	for i, input := range t.Inputs {
		serialized, err := SerializeInput(input)
		if err != nil {
			return "", errors.Wrapf(err, "could not serialize input [%d]", i)
		}
		builder.WriteString(serialized)
	}

	builder.WriteString(byteutils.NumberToVarInt(uint64(len(t.Outputs))))
	for i, output := range t.Outputs {
		serialized, err := SerializeOutput(output)
		if err != nil {
			return "", errors.Wrapf(err, "could not serialize output [%d]", i)
		}
		builder.WriteString(serialized)
	}

	if signed && len(t.Scripts) > 0 {
		builder.WriteString(byteutils.NumberToVarInt(uint64(len(t.Scripts))))
		for i, witness := range t.Scripts {
			serialized, err := SerializeWitness(witness)
			if err != nil {
				return "", errors.Wrapf(err, "could not serialize witness [%d]", i)
			}
			builder.WriteString(serialized)
		}
	}

	return builder.String(), nil
}

func serializeExclusive(t *Transaction) (string, error) {
	switch t.Type {
	case ClaimType:
		return SerializeClaimExclusive(t)
	case ContractType:
		return SerializeContractExclusive(t)
	case InvocationType:
		return SerializeInvocationExclusive(t)
	default:
		return "", fault.UnsupportedTypeError{Type: uint8(t.Type)}
	}
}

// SerializeClaimExclusive renders the claims of a claim transaction, each in
// the same form as an input.
func SerializeClaimExclusive(t *Transaction) (string, error) {
	if err := checkType(t, ClaimType); err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(byteutils.NumberToVarInt(uint64(len(t.Claims))))
	for i, claim := range t.Claims {
		serialized, err := SerializeInput(claim)
		if err != nil {
			return "", errors.Wrapf(err, "could not serialize claim [%d]", i)
		}
		builder.WriteString(serialized)
	}

	return builder.String(), nil
}

// SerializeContractExclusive checks the transaction is a contract
// transaction. Contract transactions have an empty exclusive payload.
func SerializeContractExclusive(t *Transaction) (string, error) {
	if err := checkType(t, ContractType); err != nil {
		return "", err
	}

	return "", nil
}

// SerializeInvocationExclusive renders the length prefixed script of an
// invocation transaction, followed by the gas amount from version 1 on.
func SerializeInvocationExclusive(t *Transaction) (string, error) {
	if err := checkType(t, InvocationType); err != nil {
		return "", err
	}

	if err := byteutils.ValidateHex("script", t.Script, -1); err != nil {
		return "", err
	}

	serialized := byteutils.NumberToVarInt(uint64(byteutils.ByteLength(t.Script))) +
		t.Script

	if t.Version >= 1 {
		gas, err := t.Gas.ToReverseHex()
		if err != nil {
			return "", errors.Wrap(err, "could not serialize gas")
		}
		serialized += gas
	}

	return serialized, nil
}

// SerializeAttribute renders an attribute as its usage, an optional length
// prefix and its data. Only description URL, description and remark usages
// carry the length prefix. ECDH usages are cut to the [2:64] window of the
// data hex.
func SerializeAttribute(attribute Attribute) (string, error) {
	if err := byteutils.ValidateHex("attribute data", attribute.Data, -1); err != nil {
		return "", err
	}

	size := byteutils.ByteLength(attribute.Data)
	if size > MaxAttributeSize {
		return "", fault.SizeExceededError{
			Field: "attribute data",
			Size:  size,
			Limit: MaxAttributeSize,
		}
	}

	serialized := fmt.Sprintf("%02x", uint8(attribute.Usage))

	switch usage := attribute.Usage; {
	case usage == DescriptionURLUsage:
		length, err := byteutils.NumberToHex(uint64(size), 1, false)
		if err != nil {
			return "", errors.Wrap(err, "description url is too long")
		}
		serialized += length
	case usage == DescriptionUsage || usage >= RemarkUsage:
		serialized += byteutils.NumberToVarInt(uint64(size))
	}

	if attribute.Usage == ECDH02Usage || attribute.Usage == ECDH03Usage {
		return serialized + clampedSlice(attribute.Data, ecdhDataStart, ecdhDataEnd), nil
	}

	return serialized + attribute.Data, nil
}

// SerializeInput renders an input, or a claim, as the reversed previous hash
// followed by the two byte little-endian previous index.
func SerializeInput(input Input) (string, error) {
	if err := byteutils.ValidateHex("prevHash", input.PrevHash, hashSize); err != nil {
		return "", err
	}

	if input.PrevIndex < 0 {
		return "", fault.InvalidArgument(
			"prevIndex",
			"[%d] is negative",
			input.PrevIndex,
		)
	}

	prevHash, err := byteutils.ReverseHex(input.PrevHash)
	if err != nil {
		return "", err
	}

	prevIndex, err := byteutils.NumberToHex(uint64(input.PrevIndex), 2, false)
	if err != nil {
		return "", err
	}

	prevIndex, err = byteutils.ReverseHex(prevIndex)
	if err != nil {
		return "", err
	}

	return prevHash + prevIndex, nil
}

// SerializeOutput renders an output as the reversed asset id, the value in
// little-endian Fixed8 form and the reversed script hash.
func SerializeOutput(output Output) (string, error) {
	if err := byteutils.ValidateHex("assetId", output.AssetID, hashSize); err != nil {
		return "", err
	}
	if err := byteutils.ValidateHex("scriptHash", output.ScriptHash, scriptHashSize); err != nil {
		return "", err
	}

	assetID, err := byteutils.ReverseHex(output.AssetID)
	if err != nil {
		return "", err
	}

	value, err := output.Value.ToReverseHex()
	if err != nil {
		return "", err
	}

	scriptHash, err := byteutils.ReverseHex(output.ScriptHash)
	if err != nil {
		return "", err
	}

	return assetID + value + scriptHash, nil
}

// SerializeWitness renders both witness scripts, each prefixed with its byte
// length.
func SerializeWitness(witness Witness) (string, error) {
	if err := byteutils.ValidateHex("invocationScript", witness.InvocationScript, -1); err != nil {
		return "", err
	}
	if err := byteutils.ValidateHex("verificationScript", witness.VerificationScript, -1); err != nil {
		return "", err
	}

	return byteutils.NumberToVarInt(uint64(byteutils.ByteLength(witness.InvocationScript))) +
		witness.InvocationScript +
		byteutils.NumberToVarInt(uint64(byteutils.ByteLength(witness.VerificationScript))) +
		witness.VerificationScript, nil
}

func checkType(t *Transaction, expected Type) error {
	if t.Type != expected {
		return fault.TypeMismatchError{
			Expected: uint8(expected),
			Actual:   uint8(t.Type),
		}
	}

	return nil
}

func clampedSlice(value string, start int, end int) string {
	if start > len(value) {
		start = len(value)
	}
	if end > len(value) {
		end = len(value)
	}

	return value[start:end]
}

func decodeHex(argument string, value string) ([]byte, error) {
	decoded, err := hex.DecodeString(value)
	if err != nil {
		return nil, fault.InvalidArgument(argument, "malformed hex: [%v]", err)
	}

	return decoded, nil
}
