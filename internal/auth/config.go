package auth

import (
	"fmt"
	"os"
	"strings"

	"watchbill-admin/internal/config"
	apperrors "watchbill-admin/internal/errors"

	"github.com/spf13/viper"
)

// AuthConfig holds staff authentication configuration
type AuthConfig struct {
	JWTSecret       string     `mapstructure:"jwt_secret" yaml:"jwt_secret" json:"jwt_secret"`
	TokenTTLMinutes int        `mapstructure:"token_ttl_minutes" yaml:"token_ttl_minutes" json:"token_ttl_minutes"`
	Issuer          string     `mapstructure:"issuer" yaml:"issuer" json:"issuer"`
	LDAP            LDAPConfig `mapstructure:"ldap" yaml:"ldap" json:"ldap"`
}

// LDAPConfig describes the staff directory used for sign-in
type LDAPConfig struct {
	Host               string `mapstructure:"host" yaml:"host" json:"host"`
	Port               string `mapstructure:"port" yaml:"port" json:"port"`
	BaseDN             string `mapstructure:"base_dn" yaml:"base_dn" json:"base_dn"`
	UserDNTemplate     string `mapstructure:"user_dn_template" yaml:"user_dn_template" json:"user_dn_template"`
	UseTLS             bool   `mapstructure:"use_tls" yaml:"use_tls" json:"use_tls"`
	InsecureSkipVerify bool   `mapstructure:"insecure_skip_verify" yaml:"insecure_skip_verify" json:"insecure_skip_verify"`
	TimeoutSec         int    `mapstructure:"timeout_sec" yaml:"timeout_sec" json:"timeout_sec"`
}

// LoadAuthConfig loads and validates authentication configuration. Values
// from the application config act as defaults for the auth file.
func LoadAuthConfig(configPath string, app *config.Config) (*AuthConfig, error) {
	// Create a new viper instance for auth config
	v := viper.New()

	// Set config file details
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Set default values
	setAuthDefaults(v, app)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found, use defaults and environment variables
		} else {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	var cfg AuthConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	// Override with environment variables for sensitive data
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		cfg.JWTSecret = jwtSecret
	}

	// Validate configuration
	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return apperrors.ErrJWTSecretMissing
	}
	if c.TokenTTLMinutes <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	if c.LDAP.Host == "" {
		return apperrors.ErrLDAPHostMissing
	}
	if c.LDAP.UserDNTemplate == "" || !strings.Contains(c.LDAP.UserDNTemplate, "%s") {
		return fmt.Errorf("LDAP user DN template must contain %%s for the username")
	}
	return nil
}

// setAuthDefaults sets default values for auth configuration
func setAuthDefaults(v *viper.Viper, app *config.Config) {
	v.SetDefault("token_ttl_minutes", 60)
	v.SetDefault("issuer", "watchbill-admin")
	v.SetDefault("ldap.port", "389")
	v.SetDefault("ldap.user_dn_template", "uid=%s,ou=people,dc=example,dc=com")
	v.SetDefault("ldap.timeout_sec", 10)

	if app == nil {
		return
	}
	if app.JWTSecret != "" {
		v.SetDefault("jwt_secret", app.JWTSecret)
	}
	if app.JWTTTLMin > 0 {
		v.SetDefault("token_ttl_minutes", app.JWTTTLMin)
	}
	if app.LDAPHost != "" {
		v.SetDefault("ldap.host", app.LDAPHost)
	}
	if app.LDAPPort != "" {
		v.SetDefault("ldap.port", app.LDAPPort)
	}
	if app.LDAPBaseDN != "" {
		v.SetDefault("ldap.base_dn", app.LDAPBaseDN)
	}
	if app.LDAPUserDNTemplate != "" {
		v.SetDefault("ldap.user_dn_template", app.LDAPUserDNTemplate)
	}
	v.SetDefault("ldap.use_tls", app.LDAPUseTLS)
	v.SetDefault("ldap.insecure_skip_verify", app.LDAPInsecureSkipVerify)
	if app.LDAPTimeoutSec > 0 {
		v.SetDefault("ldap.timeout_sec", app.LDAPTimeoutSec)
	}
}
