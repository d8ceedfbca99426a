package auth

import (
	"crypto/tls"
	"fmt"
	"net"
	"strings"
	"time"

	apperrors "watchbill-admin/internal/errors"

	"github.com/go-ldap/ldap/v3"
	"github.com/golang-jwt/jwt/v5"
)

// ldapClient is the part of *ldap.Conn the sign-in flow needs
type ldapClient interface {
	Bind(username, password string) error
	Close() error
	SetTimeout(time.Duration)
}

// dialLDAP opens a directory connection; replaced in tests
var dialLDAP = func(url string, tlsConfig *tls.Config) (ldapClient, error) {
	if tlsConfig != nil {
		return ldap.DialURL(url, ldap.DialWithTLSConfig(tlsConfig))
	}
	return ldap.DialURL(url)
}

// now is the token clock; replaced in tests
var now = time.Now

// AuthService signs staff in against the directory and issues session tokens
type AuthService struct {
	config *AuthConfig
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Username             string `json:"username" example:"jbosun"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// LoginRequest represents the sign-in request body
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"jbosun"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// LoginResponse represents a successful sign-in
type LoginResponse struct {
	AccessToken string `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"tokenType" example:"bearer"`
	ExpiresIn   int64  `json:"expiresIn" example:"3600"`
	Username    string `json:"username" example:"jbosun"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if config == nil {
		return nil, fmt.Errorf("auth config is required")
	}
	if err := config.ValidateConfig(); err != nil {
		return nil, err
	}
	return &AuthService{config: config}, nil
}

// Login binds to the directory as the user and returns a session token.
// Any bind failure is reported as invalid credentials.
func (s *AuthService) Login(username, password string) (*LoginResponse, error) {
	username = strings.TrimSpace(username)
	// An empty password would be an unauthenticated bind, which most
	// directories accept.
	if username == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	l, err := dialLDAP(s.ldapURL(), s.tlsConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LDAP: %w", err)
	}
	defer l.Close()

	if s.config.LDAP.TimeoutSec > 0 {
		l.SetTimeout(time.Duration(s.config.LDAP.TimeoutSec) * time.Second)
	}

	if err := l.Bind(s.userDN(username), password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.ttl().Seconds()),
		Username:    username,
	}, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(username string) (string, error) {
	issued := now()
	claims := &AuthClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issued.Add(s.ttl())),
			IssuedAt:  jwt.NewNumericDate(issued),
			NotBefore: jwt.NewNumericDate(issued),
			Issuer:    s.config.Issuer,
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithTimeFunc(now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid && claims.Username != "" {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

func (s *AuthService) ttl() time.Duration {
	return time.Duration(s.config.TokenTTLMinutes) * time.Minute
}

func (s *AuthService) userDN(username string) string {
	return fmt.Sprintf(s.config.LDAP.UserDNTemplate, ldap.EscapeDN(username))
}

func (s *AuthService) ldapURL() string {
	scheme := "ldap"
	if s.config.LDAP.UseTLS {
		scheme = "ldaps"
	}
	port := s.config.LDAP.Port
	if port == "" {
		port = "389"
		if s.config.LDAP.UseTLS {
			port = "636"
		}
	}
	return scheme + "://" + net.JoinHostPort(s.config.LDAP.Host, port)
}

func (s *AuthService) tlsConfig() *tls.Config {
	if !s.config.LDAP.UseTLS {
		return nil
	}
	return &tls.Config{
		ServerName:         s.config.LDAP.Host,
		InsecureSkipVerify: s.config.LDAP.InsecureSkipVerify,
	}
}
