package cmd

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/urfave/cli"

	"github.com/switcheo/switcheo-go/internal/config"
	ethsign "github.com/switcheo/switcheo-go/pkg/ethereum/sign"
)

// EthereumCommand contains the definition of the `ethereum` command-line
// subcommand and its own subcommands.
var EthereumCommand cli.Command

var ethKeyFileFlag = cli.StringFlag{
	Name: "eth-key-file,k",
	Usage: "Path to the ethereum key file. " +
		"If not provided read the path from a config file.",
}

const ethereumKeyDescription = `
It requires an Ethereum key to be provided in an encrypted file. A path to the key file
can be configured in a config file or specified directly with an 'eth-key-file' flag.

The key file is expected to be encrypted with a password provided as ` + config.PasswordEnvVariable + `
environment variable.

If 'output-file' flag is set the result will be stored in a specified file path.
`

const ethereumSignHashDescription = `Signs a 32-byte digest, e.g. the sha256 of
a transaction prepared by the exchange. The digest is expected as hex, with or
without a 0x prefix. The signature is outputted as 0x prefixed hex of the
65-byte {R, S, V} parameters.
` + ethereumKeyDescription

const ethereumSignArrayDescription = `Signs the transaction digests of a JSON
array of exchange messages, each in the form {"id": "<id>", "txn": {"sha256": "<digest>"}}.

The result is a JSON object mapping each message id to its signature.
` + ethereumKeyDescription

const ethereumSignParamsDescription = `Signs exchange request parameters given as
a JSON object in a file. The parameters are stringified as compact JSON with
sorted keys and signed as a personal message.

The result are the parameters extended with the signer 'address' and the
'signature'.
` + ethereumKeyDescription

const ethereumSignMessageDescription = `Signs a text as an Ethereum personal
message (the eth_sign envelope) and outputs a signature document:
{
	"address": "<signer address>",
	"msg": "<text>",
	"sig": "<0x prefixed r, s, v>",
	"version": "2"
}
The document can be checked with the 'verify' subcommand.
` + ethereumKeyDescription

const ethereumVerifyDescription = `Checks a signature document produced by
'sign-message': recovers the signer of the personal message and compares it
with the document address. V may be given as 0/1 or 27/28.

The document is read from the argument or, with the 'input-file' flag, from a file.
`

func init() {
	EthereumCommand = cli.Command{
		Name:  "ethereum",
		Usage: "Ethereum signatures calculation",
		Subcommands: []cli.Command{
			{
				Name:        "sign-hash",
				Usage:       "Sign a digest",
				Description: ethereumSignHashDescription,
				Action:      EthereumSignHash,
				ArgsUsage:   "[digest]",
				Flags:       []cli.Flag{ethKeyFileFlag, outputFileFlag},
			},
			{
				Name:        "sign-array",
				Usage:       "Sign transaction digests of many messages",
				Description: ethereumSignArrayDescription,
				Action:      EthereumSignArray,
				ArgsUsage:   "[messages-file]",
				Flags:       []cli.Flag{ethKeyFileFlag, outputFileFlag},
			},
			{
				Name:        "sign-params",
				Usage:       "Sign request parameters",
				Description: ethereumSignParamsDescription,
				Action:      EthereumSignParams,
				ArgsUsage:   "[params-file]",
				Flags:       []cli.Flag{ethKeyFileFlag, outputFileFlag},
			},
			{
				Name:        "sign-message",
				Usage:       "Sign a text as a personal message",
				Description: ethereumSignMessageDescription,
				Action:      EthereumSignMessage,
				ArgsUsage:   "[message]",
				Flags:       []cli.Flag{ethKeyFileFlag, outputFileFlag},
			},
			{
				Name:        "verify",
				Usage:       "Check a signature document",
				Description: ethereumVerifyDescription,
				Action:      EthereumVerify,
				ArgsUsage:   "[ethereum-signature]",
				Flags: []cli.Flag{
					cli.StringFlag{
						Name:  "input-file,i",
						Usage: "Input file with the signature",
					},
				},
			},
			{
				Name:        "address",
				Usage:       "Show the account address",
				Description: "Outputs the address of the Ethereum key.\n" + ethereumKeyDescription,
				Action:      EthereumAddress,
				Flags:       []cli.Flag{ethKeyFileFlag, outputFileFlag},
			},
		},
	}
}

// EthereumSignature is a signed personal message with the address of its
// signer.
type EthereumSignature struct {
	Address   common.Address `json:"address"`
	Message   string         `json:"msg"`
	Signature string         `json:"sig"`
	Version   string         `json:"version"`
}

const (
	ethereumSignatureVersion = "2"

	// V of personal message signatures is 27 or 28.
	recoveryIDBase = 27
)

// EthereumSignHash signs a digest given as the command argument.
func EthereumSignHash(c *cli.Context) error {
	digest := c.Args().First()
	if len(digest) == 0 {
		return fmt.Errorf("invalid digest")
	}

	signer, err := ethereumSigner(c)
	if err != nil {
		return err
	}

	signature, err := signer.SignHash(digest)
	if err != nil {
		return fmt.Errorf("signing failed: [%v]", err)
	}

	return outputData(c, []byte(signature), 0644)
}

// EthereumSignArray signs the transaction digests of messages read from a
// JSON file.
func EthereumSignArray(c *cli.Context) error {
	fileContent, err := readInputFile(c)
	if err != nil {
		return err
	}

	var messages []ethsign.Message
	if err := json.Unmarshal(fileContent, &messages); err != nil {
		return fmt.Errorf("failed to unmarshal messages: [%v]", err)
	}

	signer, err := ethereumSigner(c)
	if err != nil {
		return err
	}

	signatures, err := signer.SignTransactionArray(messages)
	if err != nil {
		return fmt.Errorf("signing failed: [%v]", err)
	}

	logger.Infof("signed [%d] messages", len(signatures))

	return outputJSON(c, signatures)
}

// EthereumSignParams signs request parameters read from a JSON file.
func EthereumSignParams(c *cli.Context) error {
	params, err := readParams(c)
	if err != nil {
		return err
	}

	signer, err := ethereumSigner(c)
	if err != nil {
		return err
	}

	signed, err := signer.SignCreateParams(params)
	if err != nil {
		return fmt.Errorf("signing failed: [%v]", err)
	}

	return outputJSON(c, signed)
}

// EthereumSignMessage signs the text given as the command argument.
func EthereumSignMessage(c *cli.Context) error {
	message := c.Args().First()
	if len(message) == 0 {
		return fmt.Errorf("invalid message")
	}

	signer, err := ethereumSigner(c)
	if err != nil {
		return err
	}

	signature, err := sign(signer, message)
	if err != nil {
		return fmt.Errorf("signing failed: [%v]", err)
	}

	return outputJSON(c, signature)
}

// EthereumVerify checks that a personal message signature in the exchange
// signature format was produced by the key of the address it names.
func EthereumVerify(c *cli.Context) error {
	input, err := readSignatureInput(c)
	if err != nil {
		return err
	}

	signature := &EthereumSignature{}
	if err := json.Unmarshal(input, signature); err != nil {
		return fmt.Errorf("malformed signature document: [%v]", err)
	}

	if err := verify(signature); err != nil {
		return fmt.Errorf("signature rejected: [%v]", err)
	}

	fmt.Printf(
		"signature of [%s] by [%s] is valid\n",
		signature.Message,
		signature.Address.Hex(),
	)

	return nil
}

// readSignatureInput returns the signature document from the `input-file`
// flag or, when it is not set, from the first argument.
func readSignatureInput(c *cli.Context) ([]byte, error) {
	if inputFilePath := c.String("input-file"); len(inputFilePath) > 0 {
		content, err := ioutil.ReadFile(filepath.Clean(inputFilePath))
		if err != nil {
			return nil, fmt.Errorf("failed to read a file: [%v]", err)
		}
		return content, nil
	}

	if argument := c.Args().First(); len(argument) > 0 {
		return []byte(argument), nil
	}

	return nil, fmt.Errorf("no signature given; pass it as an argument or with input-file")
}

// EthereumAddress outputs the address of the configured Ethereum key.
func EthereumAddress(c *cli.Context) error {
	signer, err := ethereumSigner(c)
	if err != nil {
		return err
	}

	return outputData(c, []byte(signer.Address()), 0644)
}

// sign signs the message as a personal message and returns it in the
// exchange signature format.
func sign(signer *ethsign.Signer, message string) (*EthereumSignature, error) {
	signature, err := signer.Sign(ethsign.PersonalMessageHash([]byte(message)))
	if err != nil {
		return nil, err
	}

	return &EthereumSignature{
		Address:   crypto.PubkeyToAddress(*signer.PublicKey()),
		Message:   message,
		Signature: hexutil.Encode(signature),
		Version:   ethereumSignatureVersion,
	}, nil
}

// verify recovers the signer of the personal message and compares it with
// the address of the signature. V is accepted both as 0/1 and as 27/28.
func verify(signature *EthereumSignature) error {
	if signature.Version != ethereumSignatureVersion {
		return fmt.Errorf(
			"signature format version [%s] is not supported; only [%s] is",
			signature.Version,
			ethereumSignatureVersion,
		)
	}

	signatureBytes, err := hexutil.Decode(signature.Signature)
	if err != nil {
		return fmt.Errorf("signature is not 0x prefixed hex: [%v]", err)
	}

	if len(signatureBytes) != crypto.SignatureLength {
		return fmt.Errorf(
			"signature has [%d] bytes instead of [%d]",
			len(signatureBytes),
			crypto.SignatureLength,
		)
	}

	if signatureBytes[crypto.RecoveryIDOffset] >= recoveryIDBase {
		signatureBytes[crypto.RecoveryIDOffset] -= recoveryIDBase
	}

	digest := ethsign.PersonalMessageHash([]byte(signature.Message))

	publicKey, err := crypto.SigToPub(digest, signatureBytes)
	if err != nil {
		return fmt.Errorf("no signer recoverable: [%v]", err)
	}

	if signer := crypto.PubkeyToAddress(*publicKey); signer != signature.Address {
		return fmt.Errorf(
			"signed by [%s], not by [%s]",
			signer.Hex(),
			signature.Address.Hex(),
		)
	}

	return nil
}
