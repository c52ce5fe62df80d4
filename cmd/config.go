package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ipfs/go-log"
	"github.com/urfave/cli"

	"github.com/switcheo/switcheo-go/internal/config"
	ethsign "github.com/switcheo/switcheo-go/pkg/ethereum/sign"
	"github.com/switcheo/switcheo-go/pkg/neo/wallet"
)

var logger = log.Logger("switcheo-cmd")

// ConfigureLogging applies the log level of the configuration to all loggers.
// It is meant to run before any command.
func ConfigureLogging(c *cli.Context) error {
	cfg, err := readConfig(c)
	if err != nil {
		return err
	}

	if err := log.SetLogLevel("*", cfg.Logging.Level); err != nil {
		return fmt.Errorf("failed to set log level: [%v]", err)
	}

	return nil
}

// readConfig reads the config file set with the global `config` flag. When
// the file does not exist the defaults are used, so commands which need no
// keys work without any configuration.
func readConfig(c *cli.Context) (*config.Config, error) {
	configPath := c.GlobalString("config")
	if len(configPath) == 0 {
		return config.Default(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		logger.Debugf("config file [%s] does not exist; using defaults", configPath)
		return config.Default(), nil
	}

	cfg, err := config.ReadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed while reading config file: [%v]", err)
	}

	return cfg, nil
}

// neoKeyPair loads the NEO key from the file set with the `neo-key-file` flag
// or, if the flag is not set, from the configuration.
func neoKeyPair(c *cli.Context) (*wallet.KeyPair, byte, error) {
	cfg, err := readConfig(c)
	if err != nil {
		return nil, 0, err
	}

	var privateKeyHex string
	if keyFilePath := c.String("neo-key-file"); len(keyFilePath) > 0 {
		keyBytes, err := ioutil.ReadFile(filepath.Clean(keyFilePath))
		if err != nil {
			return nil, 0, fmt.Errorf(
				"failed to read key file [%s]: [%v]",
				keyFilePath,
				err,
			)
		}
		privateKeyHex = strings.TrimSpace(string(keyBytes))
	} else {
		privateKeyHex, err = cfg.NeoPrivateKey()
		if err != nil {
			return nil, 0, err
		}
	}

	keyPair, err := wallet.KeyPairFromHex(privateKeyHex)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid NEO key: [%v]", err)
	}

	return keyPair, cfg.Neo.AddressVersion, nil
}

// ethereumSigner decrypts the Ethereum key file set with the `eth-key-file`
// flag or, if the flag is not set, the one from the configuration.
func ethereumSigner(c *cli.Context) (*ethsign.Signer, error) {
	var keyFilePath, keyFilePassword string
	// Check if `eth-key-file` flag was set. If not read the key file path from
	// a config file.
	if keyFilePath = c.String("eth-key-file"); len(keyFilePath) > 0 {
		keyFilePassword = os.Getenv(config.PasswordEnvVariable)
	} else {
		cfg, err := readConfig(c)
		if err != nil {
			return nil, err
		}

		keyFilePath = cfg.Ethereum.Account.KeyFile
		keyFilePassword = cfg.Ethereum.Account.KeyFilePassword
	}

	if len(keyFilePath) == 0 {
		return nil, fmt.Errorf(
			"no Ethereum key file configured; set the eth-key-file flag " +
				"or the Ethereum.Account.KeyFile property",
		)
	}

	key, err := decryptKeyFile(keyFilePath, keyFilePassword)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read key file [%s]: [%v]",
			keyFilePath,
			err,
		)
	}

	return ethsign.NewSignerFromKey(key.PrivateKey), nil
}

func decryptKeyFile(keyFilePath, password string) (*keystore.Key, error) {
	keyJSON, err := ioutil.ReadFile(filepath.Clean(keyFilePath))
	if err != nil {
		return nil, fmt.Errorf("unable to read key file: [%v]", err)
	}

	key, err := keystore.DecryptKey(keyJSON, password)
	if err != nil {
		return nil, fmt.Errorf("unable to decrypt key file: [%v]", err)
	}

	return key, nil
}
