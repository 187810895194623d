// Package adminauth verifies admin grants presented with mutating compat
// RPCs. A grant is an ed25519-signed JWT carrying the compat admin scope;
// final builds require one for every mutation, debuggable builds never do.
package adminauth

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/sdkgate/sdkgate/internal/platform/errors"
)

// Env var names for grant verification configuration.
const (
	EnvGrantIssuer    = "SDKGATE_ADMIN_GRANT_ISSUER"
	EnvGrantAudience  = "SDKGATE_ADMIN_GRANT_AUDIENCE"
	EnvGrantPublicKey = "SDKGATE_ADMIN_GRANT_PUBLIC_KEY"
)

// ScopeAdmin is the scope claim value required on admin grants.
const ScopeAdmin = "compat:admin"

// grantEnv holds raw env values before post-parse validation.
type grantEnv struct {
	Issuer    string `env:"SDKGATE_ADMIN_GRANT_ISSUER"`
	Audience  string `env:"SDKGATE_ADMIN_GRANT_AUDIENCE"`
	PublicKey string `env:"SDKGATE_ADMIN_GRANT_PUBLIC_KEY"`
}

// Config defines how admin grants are verified.
type Config struct {
	Issuer   string
	Audience string
	Key      ed25519.PublicKey
	Now      func() time.Time
}

// Configured reports whether a verifier is set up. An unconfigured verifier
// on a final build means mutations are refused outright.
func (c Config) Configured() bool {
	return c.Issuer != "" && c.Audience != "" && len(c.Key) == ed25519.PublicKeySize
}

// Claims captures validated admin grant claims.
type Claims struct {
	Issuer    string
	Audience  []string
	Subject   string
	Scope     string
	ExpiresAt time.Time
	NotBefore time.Time
	IssuedAt  time.Time
	JWTID     string
}

// grantClaims is the internal claims type used for JWT parsing.
type grantClaims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope"`
}

// LoadConfigFromEnv reads grant verification configuration. All three vars
// absent means no verifier is configured, which is not an error; a partial
// set is.
func LoadConfigFromEnv(now func() time.Time) (Config, error) {
	var raw grantEnv
	if err := env.Parse(&raw); err != nil {
		return Config{}, fmt.Errorf("parse admin grant env: %w", err)
	}
	issuer := strings.TrimSpace(raw.Issuer)
	audience := strings.TrimSpace(raw.Audience)
	publicKey := strings.TrimSpace(raw.PublicKey)
	if issuer == "" && audience == "" && publicKey == "" {
		return Config{}, nil
	}
	if issuer == "" {
		return Config{}, fmt.Errorf("%s is required", EnvGrantIssuer)
	}
	if audience == "" {
		return Config{}, fmt.Errorf("%s is required", EnvGrantAudience)
	}
	if publicKey == "" {
		return Config{}, fmt.Errorf("%s is required", EnvGrantPublicKey)
	}
	keyBytes, err := decodeBase64(publicKey)
	if err != nil {
		return Config{}, fmt.Errorf("decode admin grant public key: %w", err)
	}
	if len(keyBytes) != ed25519.PublicKeySize {
		return Config{}, fmt.Errorf("admin grant public key must be %d bytes", ed25519.PublicKeySize)
	}
	if now == nil {
		now = time.Now
	}
	return Config{
		Issuer:   issuer,
		Audience: audience,
		Key:      ed25519.PublicKey(keyBytes),
		Now:      now,
	}, nil
}

// VerifyGrant verifies an admin grant token and validates its claims.
func VerifyGrant(grant string, cfg Config) (Claims, error) {
	grant = strings.TrimSpace(grant)
	if grant == "" {
		return Claims{}, apperrors.New(apperrors.CodeGrantMissing, "admin grant is required")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if !cfg.Configured() {
		return Claims{}, errors.New("admin grant verifier is not configured")
	}

	var parsed grantClaims
	_, err := jwt.ParseWithClaims(grant, &parsed, func(token *jwt.Token) (any, error) {
		return cfg.Key, nil
	},
		jwt.WithValidMethods([]string{"EdDSA"}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return Claims{}, mapJWTError(err)
	}

	if parsed.Issuer == "" || parsed.Issuer != cfg.Issuer {
		return Claims{}, apperrors.WithMetadata(
			apperrors.CodeGrantInvalid,
			"admin grant issuer mismatch",
			map[string]string{"Field": "issuer"},
		)
	}
	if !audienceContains(parsed.Audience, cfg.Audience) {
		return Claims{}, apperrors.WithMetadata(
			apperrors.CodeGrantInvalid,
			"admin grant audience mismatch",
			map[string]string{"Field": "audience"},
		)
	}
	if parsed.Scope != ScopeAdmin {
		return Claims{}, apperrors.WithMetadata(
			apperrors.CodeGrantInvalid,
			"admin grant scope mismatch",
			map[string]string{"Field": "scope"},
		)
	}

	if parsed.ID == "" {
		return Claims{}, apperrors.New(apperrors.CodeGrantInvalid, "admin grant jti is required")
	}
	if parsed.ExpiresAt == nil {
		return Claims{}, apperrors.New(apperrors.CodeGrantInvalid, "admin grant exp is required")
	}

	now := cfg.Now().UTC()
	exp := parsed.ExpiresAt.Time.UTC()
	if !exp.After(now) {
		return Claims{}, apperrors.New(apperrors.CodeGrantExpired, "admin grant is expired")
	}
	if parsed.NotBefore != nil {
		nbf := parsed.NotBefore.Time.UTC()
		if now.Before(nbf) {
			return Claims{}, apperrors.New(apperrors.CodeGrantInvalid, "admin grant not active yet")
		}
	}

	claims := Claims{
		Issuer:    parsed.Issuer,
		Audience:  []string(parsed.Audience),
		Subject:   parsed.Subject,
		Scope:     parsed.Scope,
		ExpiresAt: exp,
		JWTID:     parsed.ID,
	}
	if parsed.NotBefore != nil {
		claims.NotBefore = parsed.NotBefore.Time.UTC()
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time.UTC()
	}
	return claims, nil
}

// mapJWTError translates jwt library errors to application errors.
func mapJWTError(err error) error {
	if errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, jwt.ErrEd25519Verification) {
		return apperrors.New(apperrors.CodeGrantInvalid, "admin grant signature is invalid")
	}
	if errors.Is(err, jwt.ErrTokenUnverifiable) {
		return apperrors.New(apperrors.CodeGrantInvalid, "admin grant alg is invalid")
	}
	return apperrors.New(apperrors.CodeGrantInvalid, "admin grant is invalid")
}

// audienceContains reports whether the audience list contains the given value.
func audienceContains(aud jwt.ClaimStrings, value string) bool {
	for _, item := range aud {
		if item == value {
			return true
		}
	}
	return false
}

func decodeBase64(value string) ([]byte, error) {
	if value == "" {
		return nil, errors.New("empty base64 value")
	}
	decoded, err := base64.RawStdEncoding.DecodeString(value)
	if err == nil {
		return decoded, nil
	}
	return base64.StdEncoding.DecodeString(value)
}
