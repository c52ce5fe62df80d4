package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli"

	"github.com/switcheo/switcheo-go/pkg/neo/transaction"
)

// TransactionCommand contains the definition of the `transaction`
// command-line subcommand and its own subcommands.
var TransactionCommand cli.Command

const transactionSerializeDescription = `Serializes a NEO transaction to the hex
string accepted by NEO nodes.

The transaction is expected in a JSON file, in the form returned by the exchange
API for orders, makes, fills and deposits.

Unless the 'signed' flag is set, witness scripts are left out and the result is
the message which has to be signed. With the 'signed' flag set, the scripts of
the transaction are appended and the result is ready for broadcasting.

If 'output-file' flag is set the result will be stored in a specified file path.
`

const transactionHashDescription = `Calculates the id of a NEO transaction given
in a JSON file. The id is the byte-reversed double SHA-256 of the transaction
serialized without witnesses.
`

func init() {
	TransactionCommand = cli.Command{
		Name:  "transaction",
		Usage: "NEO transaction serialization",
		Subcommands: []cli.Command{
			{
				Name:        "serialize",
				Usage:       "Serialize a transaction to hex",
				Description: transactionSerializeDescription,
				Action:      SerializeTransaction,
				ArgsUsage:   "[transaction-file]",
				Flags: []cli.Flag{
					cli.BoolFlag{
						Name:  "signed,s",
						Usage: "Include the witness scripts",
					},
					outputFileFlag,
				},
			},
			{
				Name:        "hash",
				Usage:       "Calculate the transaction id",
				Description: transactionHashDescription,
				Action:      HashTransaction,
				ArgsUsage:   "[transaction-file]",
				Flags: []cli.Flag{
					outputFileFlag,
				},
			},
		},
	}
}

// SerializeTransaction serializes a transaction read from a JSON file.
func SerializeTransaction(c *cli.Context) error {
	tx, err := readTransaction(c)
	if err != nil {
		return err
	}

	serialized, err := tx.Serialize(c.Bool("signed"))
	if err != nil {
		return fmt.Errorf("failed to serialize transaction: [%v]", err)
	}

	return outputData(c, []byte(serialized), 0644)
}

// HashTransaction calculates the id of a transaction read from a JSON file.
func HashTransaction(c *cli.Context) error {
	tx, err := readTransaction(c)
	if err != nil {
		return err
	}

	hash, err := tx.Hash()
	if err != nil {
		return fmt.Errorf("failed to hash transaction: [%v]", err)
	}

	return outputData(c, []byte(hash), 0644)
}

func readTransaction(c *cli.Context) (*transaction.Transaction, error) {
	fileContent, err := readInputFile(c)
	if err != nil {
		return nil, err
	}

	tx := &transaction.Transaction{}
	if err := json.Unmarshal(fileContent, tx); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transaction: [%v]", err)
	}

	return tx, nil
}
