package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestReadConfig(t *testing.T) {
	err := os.Setenv(PasswordEnvVariable, "not-my-password")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Unsetenv(PasswordEnvVariable)

	err = os.Setenv(NeoPrivateKeyEnvVariable, " not-my-key\n")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Unsetenv(NeoPrivateKeyEnvVariable)

	configPath := "../testdata/config.toml"
	cfg, err := ReadConfig(configPath)
	if err != nil {
		t.Fatalf(
			"failed to read test config: [%v]",
			err,
		)
	}

	var configReadTests = map[string]struct {
		readValueFunc func(*Config) interface{}
		expectedValue interface{}
	}{
		"Neo.KeyFile": {
			readValueFunc: func(c *Config) interface{} { return c.Neo.KeyFile },
			expectedValue: "/my/secure/location/neo.key",
		},
		"Neo.AddressVersion": {
			readValueFunc: func(c *Config) interface{} { return c.Neo.AddressVersion },
			expectedValue: byte(0x17),
		},
		"Neo.PrivateKey": {
			readValueFunc: func(c *Config) interface{} { return c.Neo.PrivateKey },
			expectedValue: "not-my-key",
		},
		"Ethereum.Account.KeyFile": {
			readValueFunc: func(c *Config) interface{} { return c.Ethereum.Account.KeyFile },
			expectedValue: "/my/secure/location/eth_key.json",
		},
		"Ethereum.Account.KeyFilePassword": {
			readValueFunc: func(c *Config) interface{} { return c.Ethereum.Account.KeyFilePassword },
			expectedValue: "not-my-password",
		},
		"Logging.Level": {
			readValueFunc: func(c *Config) interface{} { return c.Logging.Level },
			expectedValue: "debug",
		},
	}

	for testName, test := range configReadTests {
		t.Run(testName, func(t *testing.T) {
			expected := test.expectedValue
			actual := test.readValueFunc(cfg)
			if !reflect.DeepEqual(expected, actual) {
				t.Errorf("\nexpected: %v\nactual:   %v", expected, actual)
			}
		})
	}
}

func TestReadConfigDefaults(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	configFile := writeConfig(t, dir, "[Neo]\nKeyFile = \"neo.key\"")

	cfg, err := ReadConfig(configFile)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Neo.AddressVersion != defaultNeoAddressVersion {
		t.Errorf(
			"unexpected address version\nexpected: [%v]\nactual:   [%v]",
			defaultNeoAddressVersion,
			cfg.Neo.AddressVersion,
		)
	}

	if cfg.Logging.Level != defaultLogLevel {
		t.Errorf(
			"unexpected log level\nexpected: [%v]\nactual:   [%v]",
			defaultLogLevel,
			cfg.Logging.Level,
		)
	}
}

func TestReadConfig_ExpectedFailure(t *testing.T) {
	var tests = map[string]struct {
		content       string
		expectedError string
	}{
		"invalid log level": {
			content:       "[Logging]\nLevel = \"loud\"",
			expectedError: "invalid Logging.Level [loud]",
		},
		"malformed toml": {
			content:       "[Neo\nKeyFile = 1",
			expectedError: "unable to decode .toml file",
		},
	}

	for testName, test := range tests {
		t.Run(testName, func(t *testing.T) {
			dir := tempDir(t)
			defer os.RemoveAll(dir)

			_, err := ReadConfig(writeConfig(t, dir, test.content))
			if err == nil {
				t.Fatalf("expecting an error but found none")
			}
			if !errorContains(err, test.expectedError) {
				t.Errorf(
					"unexpected error\nexpected: %s\nactual:   %v",
					test.expectedError,
					err,
				)
			}
		})
	}
}

func TestNeoPrivateKey(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	keyFile := filepath.Join(dir, "neo.key")
	err := ioutil.WriteFile(keyFile, []byte("70f642894bc73dc5\n"), 0600)
	if err != nil {
		t.Fatal(err)
	}

	var tests = map[string]struct {
		neo           Neo
		expectedKey   string
		expectedError string
	}{
		"from environment": {
			neo:         Neo{KeyFile: keyFile, PrivateKey: "abcd"},
			expectedKey: "abcd",
		},
		"from key file": {
			neo:         Neo{KeyFile: keyFile},
			expectedKey: "70f642894bc73dc5",
		},
		"missing key file": {
			neo:           Neo{KeyFile: keyFile + ".missing"},
			expectedError: "could not read NEO key file",
		},
		"not configured": {
			neo:           Neo{},
			expectedError: "no NEO key configured",
		},
	}

	for testName, test := range tests {
		t.Run(testName, func(t *testing.T) {
			config := &Config{Neo: test.neo}

			key, err := config.NeoPrivateKey()
			if len(test.expectedError) > 0 {
				if err == nil || !errorContains(err, test.expectedError) {
					t.Errorf(
						"unexpected error\nexpected: %s\nactual:   %v",
						test.expectedError,
						err,
					)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			if key != test.expectedKey {
				t.Errorf(
					"unexpected key\nexpected: [%v]\nactual:   [%v]",
					test.expectedKey,
					key,
				)
			}
		})
	}
}

func TestSecretsAreNotDecoded(t *testing.T) {
	config := &Config{}
	_, err := toml.Decode(
		"[Neo]\nPrivateKey = \"abcd\"\n[Ethereum.Account]\nKeyFilePassword = \"secret\"",
		config,
	)
	if err != nil {
		t.Fatal(err)
	}

	if config.Neo.PrivateKey != "" || config.Ethereum.Account.KeyFilePassword != "" {
		t.Errorf("secrets were decoded from the config file")
	}
}

func writeConfig(t *testing.T, dir string, content string) string {
	configFile := filepath.Join(dir, "config.toml")
	if err := ioutil.WriteFile(configFile, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return configFile
}

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "switcheo-config")
	if err != nil {
		t.Fatal(err)
	}
	return dir
}

func errorContains(err error, expected string) bool {
	return strings.Contains(err.Error(), expected)
}
