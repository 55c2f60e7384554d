package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/doodlesbykumbi/cookie-session/pkg/seal"
)

const (
	DefaultConfigPath = "/etc/cookie-session"
	ConfigFileName    = "session.yml"

	// EnvPrefix prefixes every environment override, e.g. SESSION_COOKIE_NAME.
	EnvPrefix = "SESSION_"
)

const (
	SourceDefault     = "default"
	SourceFile        = "file"
	SourceEnvironment = "environment"
)

// SessionConfig holds the settings for issuing and checking session cookies.
// The encryption key is deliberately absent; it only comes from AUTH_SECRET.
type SessionConfig struct {
	// CookieName is the name of the session cookie
	CookieName string `yaml:"cookie_name" json:"cookie_name" validate:"required,printascii,excludesall=;"`

	// CookiePath scopes the cookie to a URL path
	CookiePath string `yaml:"cookie_path" json:"cookie_path" validate:"required,startswith=/"`

	// CookieDomain scopes the cookie to a domain; empty means host-only
	CookieDomain string `yaml:"cookie_domain" json:"cookie_domain" validate:"omitempty,hostname_rfc1123"`

	// CookieSecure restricts the cookie to HTTPS
	CookieSecure bool `yaml:"cookie_secure" json:"cookie_secure"`

	// CookieSameSite is one of lax, strict, none
	CookieSameSite string `yaml:"cookie_same_site" json:"cookie_same_site" validate:"oneof=lax strict none"`

	// CSRFHeader is the request header carrying the CSRF token
	CSRFHeader string `yaml:"csrf_header" json:"csrf_header" validate:"required,printascii,excludesall=:"`

	// SessionTTL is the session lifetime in seconds
	SessionTTL int `yaml:"session_ttl" json:"session_ttl" validate:"min=1"`

	// Cipher selects the AEAD used to seal sessions
	Cipher string `yaml:"cipher" json:"cipher" validate:"oneof=aes-256-gcm chacha20-poly1305"`

	// LogLevel is a zerolog level name
	LogLevel string `yaml:"log_level" json:"log_level" validate:"oneof=trace debug info warn error fatal panic disabled"`

	// LogFormat is json or console
	LogFormat string `yaml:"log_format" json:"log_format" validate:"oneof=json console"`

	// AuditEnabled writes RFC5424 audit records for session events
	AuditEnabled bool `yaml:"audit_enabled" json:"audit_enabled"`

	// CredentialsFile is the YAML file of login: bcrypt-hash pairs used by POST /session
	CredentialsFile string `yaml:"credentials_file" json:"credentials_file"`

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

// fileConfig mirrors SessionConfig with pointers so an explicit false or
// empty value in the file is distinguishable from an absent key.
type fileConfig struct {
	CookieName      *string `yaml:"cookie_name"`
	CookiePath      *string `yaml:"cookie_path"`
	CookieDomain    *string `yaml:"cookie_domain"`
	CookieSecure    *bool   `yaml:"cookie_secure"`
	CookieSameSite  *string `yaml:"cookie_same_site"`
	CSRFHeader      *string `yaml:"csrf_header"`
	SessionTTL      *int    `yaml:"session_ttl"`
	Cipher          *string `yaml:"cipher"`
	LogLevel        *string `yaml:"log_level"`
	LogFormat       *string `yaml:"log_format"`
	AuditEnabled    *bool   `yaml:"audit_enabled"`
	CredentialsFile *string `yaml:"credentials_file"`
}

// Default returns a config with default values
func Default() *SessionConfig {
	c := &SessionConfig{
		CookieName:     "_session",
		CookiePath:     "/",
		CookieSecure:   true,
		CookieSameSite: "lax",
		CSRFHeader:     "X-CSRF-Token",
		SessionTTL:     int((24 * time.Hour).Seconds()),
		Cipher:         string(seal.AES256GCM),
		LogLevel:       "info",
		LogFormat:      "json",
		AuditEnabled:   false,
		sources:        make(map[string]string),
	}
	for _, name := range attributeNames() {
		c.sources[name] = SourceDefault
	}
	return c
}

// Load reads $SESSION_CONFIG_PATH/session.yml, falling back to the default
// directory, and applies SESSION_* environment overrides.
func Load() (*SessionConfig, error) {
	configPath := os.Getenv("SESSION_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	return LoadFile(filepath.Join(configPath, ConfigFileName))
}

// LoadFile loads configuration from path and environment variables.
// A missing file is not an error. Environment variables take precedence
// over file values.
func LoadFile(path string) (*SessionConfig, error) {
	config := Default()
	config.configFilePath = path

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var file fileConfig
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		config.applyFileConfig(&file)
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := config.applyEnvConfig(); err != nil {
		return nil, err
	}

	return config, nil
}

func attributeNames() []string {
	return []string{
		"cookie_name", "cookie_path", "cookie_domain", "cookie_secure",
		"cookie_same_site", "csrf_header", "session_ttl", "cipher",
		"log_level", "log_format", "audit_enabled", "credentials_file",
	}
}

func setFrom[T any](dst *T, src *T, sources map[string]string, name string) {
	if src == nil {
		return
	}
	*dst = *src
	sources[name] = SourceFile
}

func (c *SessionConfig) applyFileConfig(file *fileConfig) {
	setFrom(&c.CookieName, file.CookieName, c.sources, "cookie_name")
	setFrom(&c.CookiePath, file.CookiePath, c.sources, "cookie_path")
	setFrom(&c.CookieDomain, file.CookieDomain, c.sources, "cookie_domain")
	setFrom(&c.CookieSecure, file.CookieSecure, c.sources, "cookie_secure")
	setFrom(&c.CookieSameSite, file.CookieSameSite, c.sources, "cookie_same_site")
	setFrom(&c.CSRFHeader, file.CSRFHeader, c.sources, "csrf_header")
	setFrom(&c.SessionTTL, file.SessionTTL, c.sources, "session_ttl")
	setFrom(&c.Cipher, file.Cipher, c.sources, "cipher")
	setFrom(&c.LogLevel, file.LogLevel, c.sources, "log_level")
	setFrom(&c.LogFormat, file.LogFormat, c.sources, "log_format")
	setFrom(&c.AuditEnabled, file.AuditEnabled, c.sources, "audit_enabled")
	setFrom(&c.CredentialsFile, file.CredentialsFile, c.sources, "credentials_file")
}

func envName(attribute string) string {
	return EnvPrefix + strings.ToUpper(attribute)
}

func (c *SessionConfig) applyEnvConfig() error {
	strs := map[string]*string{
		"cookie_name":      &c.CookieName,
		"cookie_path":      &c.CookiePath,
		"cookie_domain":    &c.CookieDomain,
		"cookie_same_site": &c.CookieSameSite,
		"csrf_header":      &c.CSRFHeader,
		"cipher":           &c.Cipher,
		"log_level":        &c.LogLevel,
		"log_format":       &c.LogFormat,
		"credentials_file": &c.CredentialsFile,
	}
	for name, dst := range strs {
		if val, ok := os.LookupEnv(envName(name)); ok {
			*dst = val
			c.sources[name] = SourceEnvironment
		}
	}

	bools := map[string]*bool{
		"cookie_secure": &c.CookieSecure,
		"audit_enabled": &c.AuditEnabled,
	}
	for name, dst := range bools {
		if val := os.Getenv(envName(name)); val != "" {
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid %s value %q: %w", envName(name), val, err)
			}
			*dst = b
			c.sources[name] = SourceEnvironment
		}
	}

	if val := os.Getenv(envName("session_ttl")); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", envName("session_ttl"), val, err)
		}
		c.SessionTTL = i
		c.sources["session_ttl"] = SourceEnvironment
	}

	return nil
}

// Source returns where a configuration attribute's value came from
func (c *SessionConfig) Source(name string) string {
	if s, ok := c.sources[name]; ok {
		return s
	}
	return SourceDefault
}

// TTL returns the session TTL as a duration
func (c *SessionConfig) TTL() time.Duration {
	return time.Duration(c.SessionTTL) * time.Second
}

// SameSite maps CookieSameSite onto net/http.
func (c *SessionConfig) SameSite() http.SameSite {
	switch c.CookieSameSite {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// Algorithm returns the configured cipher.
func (c *SessionConfig) Algorithm() (seal.Algorithm, error) {
	return seal.ParseAlgorithm(c.Cipher)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate validates the configuration
func (c *SessionConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			return err
		}

		messages := make([]string, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			messages = append(messages, fmt.Sprintf("invalid %s value %q (%s)", fe.Field(), fmt.Sprint(fe.Value()), fe.Tag()))
		}
		return errors.New(strings.Join(messages, "; "))
	}

	// Browsers drop SameSite=None cookies that are not Secure.
	if c.CookieSameSite == "none" && !c.CookieSecure {
		return errors.New("cookie_same_site none requires cookie_secure")
	}

	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *SessionConfig) Attributes() []Attribute {
	attr := func(name, value string) Attribute {
		return Attribute{Name: name, Value: value, Source: c.Source(name)}
	}
	return []Attribute{
		attr("cookie_name", c.CookieName),
		attr("cookie_path", c.CookiePath),
		attr("cookie_domain", c.CookieDomain),
		attr("cookie_secure", strconv.FormatBool(c.CookieSecure)),
		attr("cookie_same_site", c.CookieSameSite),
		attr("csrf_header", c.CSRFHeader),
		attr("session_ttl", strconv.Itoa(c.SessionTTL)),
		attr("cipher", c.Cipher),
		attr("log_level", c.LogLevel),
		attr("log_format", c.LogFormat),
		attr("audit_enabled", strconv.FormatBool(c.AuditEnabled)),
		attr("credentials_file", c.CredentialsFile),
	}
}

// FormatText returns a text representation of the configuration
func (c *SessionConfig) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *SessionConfig) FormatJSON() (string, error) {
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
