package wallet

import (
	"encoding/hex"
	"math"
	"strconv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/switcheo/switcheo-go/pkg/fault"
	"github.com/switcheo/switcheo-go/pkg/utils/byteutils"
)

const (
	// Native assets are identified by a 32-byte transaction hash, NEP-5
	// tokens by their 20-byte contract script hash.
	nativeAssetHashSize = 32
	tokenAssetHashSize  = 20

	minAssetAmount = 0.00000001
	maxAssetAmount = 1000000
)

// CreateOfferHash computes the hash identifying an offer on the exchange
// contract. The key is the concatenation of the maker script hash, offer and
// want asset hashes, all in little-endian order, the offer and want amounts as
// 8-byte little-endian numbers and the nonce bytes. The hash is the double
// SHA-256 of the key, displayed in reversed byte order.
func CreateOfferHash(
	address string,
	offerAssetHash string,
	offerAmount uint64,
	wantAssetHash string,
	wantAmount uint64,
	nonce string,
) (string, error) {
	scriptHash, err := ScriptHashFromAddress(address, AddressVersion)
	if err != nil {
		return "", err
	}

	if err := validateAssetHash("offer asset hash", offerAssetHash); err != nil {
		return "", err
	}
	if err := validateAssetHash("want asset hash", wantAssetHash); err != nil {
		return "", err
	}

	key := ""
	for _, hash := range []string{scriptHash, offerAssetHash, wantAssetHash} {
		reversed, err := byteutils.ReverseHex(hash)
		if err != nil {
			return "", err
		}
		key += reversed
	}

	for _, amount := range []uint64{offerAmount, wantAmount} {
		encoded, err := byteutils.NumberToHex(amount, 8, true)
		if err != nil {
			return "", err
		}
		key += encoded
	}

	key += hex.EncodeToString([]byte(nonce))

	keyBytes, _ := hex.DecodeString(key)

	// chainhash renders hashes byte reversed.
	return chainhash.DoubleHashH(keyBytes).String(), nil
}

func validateAssetHash(argument string, assetHash string) error {
	if err := byteutils.ValidateHex(argument, assetHash, -1); err != nil {
		return err
	}

	switch byteutils.ByteLength(assetHash) {
	case nativeAssetHashSize, tokenAssetHashSize:
		return nil
	default:
		return fault.InvalidArgument(
			argument,
			"expected [%d] or [%d] bytes, has [%d]",
			nativeAssetHashSize,
			tokenAssetHashSize,
			byteutils.ByteLength(assetHash),
		)
	}
}

// AssetAmount converts a decimal amount to the integer string of its smallest
// units, with power decimal places. The amount has to lie strictly between
// 0.00000001 and 1000000.
func AssetAmount(amount float64, power int) (string, error) {
	if !(amount > minAssetAmount && amount < maxAssetAmount) {
		return "", fault.InvalidArgument(
			"amount",
			"[%v] outside of acceptable range [%v]-[%v]",
			amount,
			minAssetAmount,
			maxAssetAmount,
		)
	}

	return strconv.FormatFloat(amount*math.Pow(10, float64(power)), 'f', 0, 64), nil
}
