package wallet

import (
	"encoding/hex"

	"github.com/btcsuite/btcutil/base58"

	"github.com/switcheo/switcheo-go/pkg/fault"
	"github.com/switcheo/switcheo-go/pkg/utils/byteutils"
)

const (
	// AddressVersion is the address version byte of NEO main and test net.
	AddressVersion byte = 0x17

	scriptHashSize = 20
)

// ScriptHashFromAddress decodes a base58check address to its script hash in
// display order.
func ScriptHashFromAddress(address string, version byte) (string, error) {
	decoded, decodedVersion, err := base58.CheckDecode(address)
	if err != nil {
		return "", fault.InvalidArgument("address", "[%s]: %v", address, err)
	}

	if decodedVersion != version {
		return "", fault.InvalidArgument(
			"address",
			"unexpected version [0x%02x] of [%s]",
			decodedVersion,
			address,
		)
	}

	if len(decoded) != scriptHashSize {
		return "", fault.InvalidArgument(
			"address",
			"unexpected script hash size [%d] of [%s]",
			len(decoded),
			address,
		)
	}

	return displayScriptHash(decoded), nil
}

// AddressFromScriptHash encodes a script hash given in display order as a
// base58check address.
func AddressFromScriptHash(scriptHash string, version byte) (string, error) {
	if err := byteutils.ValidateHex("script hash", scriptHash, scriptHashSize); err != nil {
		return "", err
	}

	reversed, err := byteutils.ReverseHex(scriptHash)
	if err != nil {
		return "", err
	}

	raw, _ := hex.DecodeString(reversed)

	return encodeAddress(raw, version), nil
}

func encodeAddress(scriptHash []byte, version byte) string {
	return base58.CheckEncode(scriptHash, version)
}

func displayScriptHash(scriptHash []byte) string {
	// hex of whole bytes always has even length.
	reversed, _ := byteutils.ReverseHex(hex.EncodeToString(scriptHash))
	return reversed
}
