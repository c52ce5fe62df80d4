package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/urfave/cli"
)

var outputFileFlag = cli.StringFlag{
	Name:  "output-file,o",
	Usage: "Output file for the result",
}

// outputData writes the data to the file given with the `output-file` flag or
// to the standard output if the flag is not set. An existing file is never
// overwritten.
func outputData(c *cli.Context, data []byte, perm os.FileMode) error {
	if outputFilePath := c.String("output-file"); len(outputFilePath) > 0 {
		if _, err := os.Stat(outputFilePath); !os.IsNotExist(err) {
			return fmt.Errorf(
				"could not write output to a file; file [%s] already exists",
				outputFilePath,
			)
		}

		err := ioutil.WriteFile(outputFilePath, data, perm)
		if err != nil {
			return fmt.Errorf(
				"failed to write output to a file [%s]: [%v]",
				outputFilePath,
				err,
			)
		}

		fmt.Printf("output stored to a file: %s\n", outputFilePath)
	} else {
		_, err := os.Stdout.Write(append(data, '\n'))
		if err != nil {
			return fmt.Errorf(
				"could not write bytes to stdout: [%v]",
				err,
			)
		}
	}

	return nil
}

// readInputFile reads the file given as the first command argument.
func readInputFile(c *cli.Context) ([]byte, error) {
	inputFilePath := c.Args().First()
	if len(inputFilePath) == 0 {
		return nil, fmt.Errorf("missing input file argument")
	}

	fileContent, err := ioutil.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read a file: [%v]", err)
	}

	return fileContent, nil
}

// readParams reads request parameters from the JSON file given as the first
// command argument. Numbers keep their literal form.
func readParams(c *cli.Context) (map[string]interface{}, error) {
	fileContent, err := readInputFile(c)
	if err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(fileContent))
	decoder.UseNumber()

	params := make(map[string]interface{})
	if err := decoder.Decode(&params); err != nil {
		return nil, fmt.Errorf("failed to unmarshal params: [%v]", err)
	}

	return params, nil
}

func outputJSON(c *cli.Context, value interface{}) error {
	marshaled, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal result: [%v]", err)
	}

	return outputData(c, marshaled, 0644)
}
