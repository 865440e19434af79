package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doodlesbykumbi/cryptography-in-go/pkg/crypto"
)

const (
	DefaultConfigPath = "/etc/cryptography/config"
	ConfigFileName    = "cryptography.yml"
)

// DefaultSalt is the KDF salt Django's cryptography module derives its
// encryption key with.
const DefaultSalt = "django-cryptography"

// DefaultKeyIterations is the PBKDF2 iteration count Django's cryptography
// module hardcodes.
const DefaultKeyIterations = 30000

// Config holds all cryptography configuration settings
type Config struct {
	// Secret is the signing secret. It keys every signer and, when Key is
	// unset, is also the input to the encryption key derivation.
	Secret string `yaml:"secret" json:"secret"`

	// Key is optional key material for the encryption key derivation. It
	// is run through PBKDF2 either way, matching Django's CRYPTOGRAPHY_KEY.
	Key string `yaml:"key" json:"key"`

	// Salt is the PBKDF2 salt for the encryption key derivation
	Salt string `yaml:"salt" json:"salt"`

	// KeyIterations is the PBKDF2 iteration count for the encryption key
	// derivation
	KeyIterations int `yaml:"key_iterations" json:"key_iterations"`

	// Digest is the hash algorithm for signing and key derivation
	Digest crypto.Algorithm `yaml:"digest" json:"digest"`

	// DatabaseURL is the PostgreSQL connection string for the vault
	DatabaseURL string `yaml:"database_url" json:"database_url"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		Salt:          DefaultSalt,
		KeyIterations: DefaultKeyIterations,
		Digest:        crypto.DefaultAlgorithm,
		sources:       make(map[string]string),
	}
}

// Load loads configuration from file and environment variables
// Environment variables take precedence over file values
func Load() (*Config, error) {
	config := newDefault()

	// Initialize all sources as "default"
	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	// Determine config file path
	configPath := os.Getenv("CRYPTOGRAPHY_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	// Try to load from config file
	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	// Override with environment variables
	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"secret", "key", "salt", "key_iterations", "digest", "database_url",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if file.Secret != "" {
		c.Secret = file.Secret
		c.sources["secret"] = "file"
	}
	if file.Key != "" {
		c.Key = file.Key
		c.sources["key"] = "file"
	}
	if file.Salt != "" {
		c.Salt = file.Salt
		c.sources["salt"] = "file"
	}
	if file.KeyIterations != 0 {
		c.KeyIterations = file.KeyIterations
		c.sources["key_iterations"] = "file"
	}
	if file.Digest != 0 {
		c.Digest = file.Digest
		c.sources["digest"] = "file"
	}
	if file.DatabaseURL != "" {
		c.DatabaseURL = file.DatabaseURL
		c.sources["database_url"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("CRYPTOGRAPHY_SECRET"); val != "" {
		c.Secret = val
		c.sources["secret"] = "environment"
	}
	if val := os.Getenv("CRYPTOGRAPHY_KEY"); val != "" {
		c.Key = val
		c.sources["key"] = "environment"
	}
	if val := os.Getenv("CRYPTOGRAPHY_SALT"); val != "" {
		c.Salt = val
		c.sources["salt"] = "environment"
	}
	if val := os.Getenv("CRYPTOGRAPHY_KEY_ITERATIONS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.KeyIterations = i
			c.sources["key_iterations"] = "environment"
		}
	}
	if val := os.Getenv("CRYPTOGRAPHY_DIGEST"); val != "" {
		if algorithm, err := crypto.ParseAlgorithm(val); err == nil {
			c.Digest = algorithm
			c.sources["digest"] = "environment"
		}
	}
	if val := os.Getenv("DATABASE_URL"); val != "" {
		c.DatabaseURL = val
		c.sources["database_url"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// DerivedKey runs the configured key material through PBKDF2 the way
// Django's cryptography module derives its encryption key. Key takes
// precedence over Secret as input but is never used raw.
func (c *Config) DerivedKey() ([]byte, error) {
	material := c.Key
	if material == "" {
		material = c.Secret
	}
	if material == "" {
		return nil, fmt.Errorf("a secret is required: set CRYPTOGRAPHY_SECRET or secret in %s", c.configFilePath)
	}
	return crypto.PBKDF2([]byte(material), []byte(c.Salt), c.KeyIterations, 0, c.Digest)
}

// Cipher assembles the token cipher from the configured key material:
// the encryption key is derived, the signing key is the raw secret.
func (c *Config) Cipher() (*crypto.FernetBytes, error) {
	if c.Secret == "" {
		return nil, fmt.Errorf("a secret is required: set CRYPTOGRAPHY_SECRET or secret in %s", c.configFilePath)
	}
	key, err := c.DerivedKey()
	if err != nil {
		return nil, err
	}
	signer, err := crypto.NewFernetSigner([]byte(c.Secret), c.Digest)
	if err != nil {
		return nil, err
	}
	return crypto.NewFernetBytes(key, signer)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.KeyIterations <= 0 {
		return fmt.Errorf("key_iterations must be positive, got %d", c.KeyIterations)
	}
	if _, err := c.Digest.Hasher(); err != nil {
		return err
	}
	return nil
}

// Attributes returns all configuration attributes with their values and
// sources. Secret material is masked.
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "secret", Value: mask(c.Secret), Source: c.Source("secret")},
		{Name: "key", Value: mask(c.Key), Source: c.Source("key")},
		{Name: "salt", Value: c.Salt, Source: c.Source("salt")},
		{Name: "key_iterations", Value: strconv.Itoa(c.KeyIterations), Source: c.Source("key_iterations")},
		{Name: "digest", Value: c.Digest.String(), Source: c.Source("digest")},
		{Name: "database_url", Value: mask(c.DatabaseURL), Source: c.Source("database_url")},
	}
}

func mask(value string) string {
	if value == "" {
		return ""
	}
	return "(set)"
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
