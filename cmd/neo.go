package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli"

	neosign "github.com/switcheo/switcheo-go/pkg/neo/sign"
)

// NeoCommand contains the definition of the `neo` command-line subcommand and
// its own subcommands.
var NeoCommand cli.Command

var neoKeyFileFlag = cli.StringFlag{
	Name: "neo-key-file,k",
	Usage: "Path to a file with the hex NEO private key. " +
		"If not provided the key is read as set in a config file.",
}

const neoKeyDescription = `
The NEO private key is read from a file given with the 'neo-key-file' flag,
otherwise from the SWITCHEO_NEO_PRIVATE_KEY environment variable or the key file
configured in a config file.

If 'output-file' flag is set the result will be stored in a specified file path.
`

const neoSignTransactionDescription = `Signs a NEO transaction given in a JSON
file. The signature covers the transaction serialized without witnesses and is
outputted as hex of the 64-byte {R, S} pair.
` + neoKeyDescription

const neoSignArrayDescription = `Signs the transactions of a JSON array of
exchange messages, each in the form {"id": "<id>", "txn": {<transaction>}}.

The result is a JSON object mapping each message id to its signature.
` + neoKeyDescription

const neoSignMessageDescription = `Signs a message in the format used by NEO
wallets. The message is stringified as compact JSON, wrapped in the wallet
envelope and signed.

The result is outputted as:
{
	"address": "<address>",
	"publicKey": "<compressed public key>",
	"encoded": "<signed message hex>",
	"signature": "<signature>"
}
` + neoKeyDescription

const neoSignParamsDescription = `Signs exchange request parameters given as a
JSON object in a file.

By default the result are the parameters extended with the account script hash
as 'address' and the 'signature'. With the 'execute' flag set only the
'signature' is added, as expected when executing a prepared request.
` + neoKeyDescription

func init() {
	NeoCommand = cli.Command{
		Name:  "neo",
		Usage: "NEO signatures calculation",
		Subcommands: []cli.Command{
			{
				Name:        "sign-transaction",
				Usage:       "Sign a transaction",
				Description: neoSignTransactionDescription,
				Action:      NeoSignTransaction,
				ArgsUsage:   "[transaction-file]",
				Flags:       []cli.Flag{neoKeyFileFlag, outputFileFlag},
			},
			{
				Name:        "sign-array",
				Usage:       "Sign transactions of many messages",
				Description: neoSignArrayDescription,
				Action:      NeoSignArray,
				ArgsUsage:   "[messages-file]",
				Flags:       []cli.Flag{neoKeyFileFlag, outputFileFlag},
			},
			{
				Name:        "sign-message",
				Usage:       "Sign a message",
				Description: neoSignMessageDescription,
				Action:      NeoSignMessage,
				ArgsUsage:   "[message]",
				Flags:       []cli.Flag{neoKeyFileFlag, outputFileFlag},
			},
			{
				Name:        "sign-params",
				Usage:       "Sign request parameters",
				Description: neoSignParamsDescription,
				Action:      NeoSignParams,
				ArgsUsage:   "[params-file]",
				Flags: []cli.Flag{
					neoKeyFileFlag,
					cli.BoolFlag{
						Name:  "execute,e",
						Usage: "Add only the signature",
					},
					outputFileFlag,
				},
			},
			{
				Name:        "address",
				Usage:       "Show the account address",
				Description: "Outputs the address, script hash and public key of the NEO key.\n" + neoKeyDescription,
				Action:      NeoAddress,
				Flags:       []cli.Flag{neoKeyFileFlag, outputFileFlag},
			},
		},
	}
}

// NeoAccount is the public identity of a NEO key.
type NeoAccount struct {
	Address    string `json:"address"`
	ScriptHash string `json:"scriptHash"`
	PublicKey  string `json:"publicKey"`
}

// NeoSignature is a signed NEO wallet message.
type NeoSignature struct {
	Address   string `json:"address"`
	PublicKey string `json:"publicKey"`
	Encoded   string `json:"encoded"`
	Signature string `json:"signature"`
}

// NeoSignTransaction signs a transaction read from a JSON file.
func NeoSignTransaction(c *cli.Context) error {
	tx, err := readTransaction(c)
	if err != nil {
		return err
	}

	keyPair, _, err := neoKeyPair(c)
	if err != nil {
		return err
	}

	signature, err := neosign.SignTransaction(tx, keyPair)
	if err != nil {
		return fmt.Errorf("signing failed: [%v]", err)
	}

	return outputData(c, []byte(signature), 0644)
}

// NeoSignArray signs the transactions of messages read from a JSON file.
func NeoSignArray(c *cli.Context) error {
	fileContent, err := readInputFile(c)
	if err != nil {
		return err
	}

	var messages []neosign.Message
	if err := json.Unmarshal(fileContent, &messages); err != nil {
		return fmt.Errorf("failed to unmarshal messages: [%v]", err)
	}

	keyPair, _, err := neoKeyPair(c)
	if err != nil {
		return err
	}

	signatures, err := neosign.SignMessageArray(messages, keyPair)
	if err != nil {
		return fmt.Errorf("signing failed: [%v]", err)
	}

	logger.Infof("signed [%d] messages", len(signatures))

	return outputJSON(c, signatures)
}

// NeoSignMessage signs a message given as the command argument.
func NeoSignMessage(c *cli.Context) error {
	message := c.Args().First()
	if len(message) == 0 {
		return fmt.Errorf("invalid message")
	}

	keyPair, addressVersion, err := neoKeyPair(c)
	if err != nil {
		return err
	}

	encoded, err := neosign.EncodeMessage(message)
	if err != nil {
		return fmt.Errorf("failed to encode message: [%v]", err)
	}

	signature, err := neosign.SignMessage(encoded, keyPair)
	if err != nil {
		return fmt.Errorf("signing failed: [%v]", err)
	}

	return outputJSON(c, &NeoSignature{
		Address:   keyPair.Address(addressVersion),
		PublicKey: hex.EncodeToString(keyPair.CompressedPublicKey()),
		Encoded:   encoded,
		Signature: signature,
	})
}

// NeoSignParams signs request parameters read from a JSON file.
func NeoSignParams(c *cli.Context) error {
	params, err := readParams(c)
	if err != nil {
		return err
	}

	keyPair, _, err := neoKeyPair(c)
	if err != nil {
		return err
	}

	var signed neosign.Params
	if c.Bool("execute") {
		signed, err = neosign.SignExecuteParams(params, keyPair)
	} else {
		signed, err = neosign.SignCreateParams(params, keyPair)
	}
	if err != nil {
		return fmt.Errorf("signing failed: [%v]", err)
	}

	return outputJSON(c, signed)
}

// NeoAddress outputs the identity of the configured NEO key.
func NeoAddress(c *cli.Context) error {
	keyPair, addressVersion, err := neoKeyPair(c)
	if err != nil {
		return err
	}

	return outputJSON(c, &NeoAccount{
		Address:    keyPair.Address(addressVersion),
		ScriptHash: keyPair.ScriptHash(),
		PublicKey:  hex.EncodeToString(keyPair.CompressedPublicKey()),
	})
}
