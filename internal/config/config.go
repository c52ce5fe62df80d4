package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// PasswordEnvVariable is the environment variable holding the password of
	// the Ethereum key file.
	PasswordEnvVariable = "SWITCHEO_ETHEREUM_PASSWORD"
	// NeoPrivateKeyEnvVariable is the environment variable which, when set,
	// holds the NEO private key instead of the configured key file.
	NeoPrivateKeyEnvVariable = "SWITCHEO_NEO_PRIVATE_KEY"

	defaultNeoAddressVersion = 0x17
	defaultLogLevel          = "info"
)

// Log levels understood by the logging backend.
var logLevels = []string{"critical", "error", "warning", "notice", "info", "debug"}

// Config is the top level config structure.
type Config struct {
	Neo      Neo
	Ethereum Ethereum
	Logging  Logging
}

// Neo holds the NEO account configuration.
type Neo struct {
	// KeyFile is the path to a file holding the hex private key.
	KeyFile        string
	AddressVersion byte

	// PrivateKey is read from NeoPrivateKeyEnvVariable, never from the file.
	PrivateKey string `toml:"-"`
}

// Ethereum holds the Ethereum account configuration.
type Ethereum struct {
	Account Account
}

// Account is an Ethereum account stored in an encrypted key file.
type Account struct {
	KeyFile string

	// KeyFilePassword is read from PasswordEnvVariable, never from the file.
	KeyFilePassword string `toml:"-"`
}

// Logging holds the log level applied to all loggers.
type Logging struct {
	Level string
}

// ReadConfig reads in the configuration file in .toml format, applies
// defaults and reads secrets from the environment.
func ReadConfig(filePath string) (*Config, error) {
	config := &Config{}
	if _, err := toml.DecodeFile(filePath, config); err != nil {
		return nil, fmt.Errorf("unable to decode .toml file [%s] error [%s]", filePath, err)
	}

	config.applyDefaults()
	config.readEnvironment()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Default returns the configuration used when no configuration file exists.
// Secrets are still read from the environment.
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	config.readEnvironment()
	return config
}

// NeoPrivateKey returns the NEO private key hex, from the environment if
// set, otherwise from the configured key file.
func (c *Config) NeoPrivateKey() (string, error) {
	if len(c.Neo.PrivateKey) > 0 {
		return c.Neo.PrivateKey, nil
	}

	if len(c.Neo.KeyFile) == 0 {
		return "", fmt.Errorf(
			"no NEO key configured; set [%s] or the Neo.KeyFile property",
			NeoPrivateKeyEnvVariable,
		)
	}

	keyBytes, err := ioutil.ReadFile(c.Neo.KeyFile)
	if err != nil {
		return "", fmt.Errorf(
			"could not read NEO key file [%s]: [%v]",
			c.Neo.KeyFile,
			err,
		)
	}

	return strings.TrimSpace(string(keyBytes)), nil
}

func (c *Config) applyDefaults() {
	if c.Neo.AddressVersion == 0 {
		c.Neo.AddressVersion = defaultNeoAddressVersion
	}

	if len(c.Logging.Level) == 0 {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) readEnvironment() {
	c.Neo.PrivateKey = strings.TrimSpace(os.Getenv(NeoPrivateKeyEnvVariable))
	c.Ethereum.Account.KeyFilePassword = os.Getenv(PasswordEnvVariable)
}

func (c *Config) validate() error {
	for _, level := range logLevels {
		if strings.EqualFold(level, c.Logging.Level) {
			return nil
		}
	}

	return fmt.Errorf(
		"invalid Logging.Level [%s]; expected one of %v",
		c.Logging.Level,
		logLevels,
	)
}
