package adminauth

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "github.com/sdkgate/sdkgate/internal/platform/errors"
)

func TestLoadConfigFromEnvAbsentMeansUnconfigured(t *testing.T) {
	t.Setenv(EnvGrantIssuer, "")
	t.Setenv(EnvGrantAudience, "")
	t.Setenv(EnvGrantPublicKey, "")

	cfg, err := LoadConfigFromEnv(nil)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Configured() {
		t.Fatal("expected unconfigured verifier when env vars are absent")
	}
}

func TestLoadConfigFromEnvRejectsPartialConfig(t *testing.T) {
	t.Setenv(EnvGrantIssuer, "sdkgate")
	t.Setenv(EnvGrantAudience, "")
	t.Setenv(EnvGrantPublicKey, "")

	if _, err := LoadConfigFromEnv(nil); err == nil {
		t.Fatal("expected error when only some env vars are set")
	}
}

func TestLoadConfigFromEnvReadsFullConfig(t *testing.T) {
	pubKey, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	t.Setenv(EnvGrantIssuer, "sdkgate")
	t.Setenv(EnvGrantAudience, "compat")
	t.Setenv(EnvGrantPublicKey, base64.RawStdEncoding.EncodeToString(pubKey))

	cfg, err := LoadConfigFromEnv(nil)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.Configured() {
		t.Fatal("expected configured verifier")
	}
	if cfg.Issuer != "sdkgate" || cfg.Audience != "compat" {
		t.Fatalf("issuer/audience = %q/%q, want sdkgate/compat", cfg.Issuer, cfg.Audience)
	}
	if len(cfg.Key) != ed25519.PublicKeySize {
		t.Fatalf("key size = %d, want %d", len(cfg.Key), ed25519.PublicKeySize)
	}
}

func TestLoadConfigFromEnvRejectsBadKey(t *testing.T) {
	t.Setenv(EnvGrantIssuer, "sdkgate")
	t.Setenv(EnvGrantAudience, "compat")
	t.Setenv(EnvGrantPublicKey, base64.RawStdEncoding.EncodeToString([]byte("short")))

	if _, err := LoadConfigFromEnv(nil); err == nil {
		t.Fatal("expected error for wrong key size")
	}
}

func TestVerifyGrantSuccess(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	grant := signGrant(t, priv, map[string]any{"alg": "EdDSA", "typ": "JWT"}, map[string]any{
		"iss":   "sdkgate",
		"aud":   []string{"compat", "secondary"},
		"sub":   "operator-1",
		"exp":   now.Add(2 * time.Hour).Unix(),
		"iat":   now.Add(-time.Minute).Unix(),
		"jti":   "jti-1",
		"scope": ScopeAdmin,
	})

	cfg := Config{Issuer: "sdkgate", Audience: "compat", Key: pub, Now: func() time.Time { return now }}
	claims, err := VerifyGrant(grant, cfg)
	if err != nil {
		t.Fatalf("verify grant: %v", err)
	}
	if claims.Issuer != "sdkgate" {
		t.Fatalf("issuer = %q, want sdkgate", claims.Issuer)
	}
	if claims.Subject != "operator-1" {
		t.Fatalf("subject = %q, want operator-1", claims.Subject)
	}
	if claims.Scope != ScopeAdmin {
		t.Fatalf("scope = %q, want %q", claims.Scope, ScopeAdmin)
	}
	if claims.JWTID != "jti-1" {
		t.Fatalf("jti = %q, want jti-1", claims.JWTID)
	}
}

func TestVerifyGrantEmptyGrant(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	cfg := Config{Issuer: "sdkgate", Audience: "compat", Key: pub}

	_, err = VerifyGrant("   ", cfg)
	if !errors.Is(err, apperrors.New(apperrors.CodeGrantMissing, "")) {
		t.Fatalf("error = %v, want grant-missing code", err)
	}
}

func TestVerifyGrantExpired(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	grant := signGrant(t, priv, map[string]any{"alg": "EdDSA"}, map[string]any{
		"iss":   "sdkgate",
		"aud":   "compat",
		"exp":   now.Add(-time.Minute).Unix(),
		"jti":   "jti-1",
		"scope": ScopeAdmin,
	})

	cfg := Config{Issuer: "sdkgate", Audience: "compat", Key: pub, Now: func() time.Time { return now }}
	_, err = VerifyGrant(grant, cfg)
	if !errors.Is(err, apperrors.New(apperrors.CodeGrantExpired, "")) {
		t.Fatalf("error = %v, want grant-expired code", err)
	}
}

func TestVerifyGrantClaimMismatches(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	cfg := Config{Issuer: "sdkgate", Audience: "compat", Key: pub, Now: func() time.Time { return now }}

	base := func() map[string]any {
		return map[string]any{
			"iss":   "sdkgate",
			"aud":   "compat",
			"exp":   now.Add(time.Hour).Unix(),
			"jti":   "jti-1",
			"scope": ScopeAdmin,
		}
	}

	cases := []struct {
		name   string
		mutate func(claims map[string]any)
	}{
		{name: "wrong issuer", mutate: func(claims map[string]any) { claims["iss"] = "other" }},
		{name: "wrong audience", mutate: func(claims map[string]any) { claims["aud"] = "other" }},
		{name: "wrong scope", mutate: func(claims map[string]any) { claims["scope"] = "compat:read" }},
		{name: "missing jti", mutate: func(claims map[string]any) { delete(claims, "jti") }},
		{name: "missing exp", mutate: func(claims map[string]any) { delete(claims, "exp") }},
		{name: "not yet valid", mutate: func(claims map[string]any) { claims["nbf"] = now.Add(time.Hour).Unix() }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			claims := base()
			tc.mutate(claims)
			grant := signGrant(t, priv, map[string]any{"alg": "EdDSA"}, claims)

			_, err := VerifyGrant(grant, cfg)
			if !errors.Is(err, apperrors.New(apperrors.CodeGrantInvalid, "")) {
				t.Fatalf("error = %v, want grant-invalid code", err)
			}
		})
	}
}

func TestVerifyGrantRejectsWrongKey(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate verification key: %v", err)
	}
	_, otherPriv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate signing key: %v", err)
	}

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	grant := signGrant(t, otherPriv, map[string]any{"alg": "EdDSA"}, map[string]any{
		"iss":   "sdkgate",
		"aud":   "compat",
		"exp":   now.Add(time.Hour).Unix(),
		"jti":   "jti-1",
		"scope": ScopeAdmin,
	})

	cfg := Config{Issuer: "sdkgate", Audience: "compat", Key: pub, Now: func() time.Time { return now }}
	_, err = VerifyGrant(grant, cfg)
	if !errors.Is(err, apperrors.New(apperrors.CodeGrantInvalid, "")) {
		t.Fatalf("error = %v, want grant-invalid code", err)
	}
}

func TestVerifyGrantRejectsWrongAlg(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	// The header claims HS256, so parsing must refuse before verification.
	grant := signGrant(t, priv, map[string]any{"alg": "HS256"}, map[string]any{
		"iss":   "sdkgate",
		"aud":   "compat",
		"exp":   now.Add(time.Hour).Unix(),
		"jti":   "jti-1",
		"scope": ScopeAdmin,
	})

	cfg := Config{Issuer: "sdkgate", Audience: "compat", Key: pub, Now: func() time.Time { return now }}
	_, err = VerifyGrant(grant, cfg)
	if !errors.Is(err, apperrors.New(apperrors.CodeGrantInvalid, "")) {
		t.Fatalf("error = %v, want grant-invalid code", err)
	}
}

func TestVerifyGrantUnconfiguredVerifier(t *testing.T) {
	_, err := VerifyGrant("some-token", Config{})
	if err == nil || !strings.Contains(err.Error(), "not configured") {
		t.Fatalf("error = %v, want unconfigured verifier error", err)
	}
}

func signGrant(t *testing.T, privateKey ed25519.PrivateKey, header, payload map[string]any) string {
	t.Helper()

	headerJSON, err := json.Marshal(header)
	if err != nil {
		t.Fatalf("marshal header: %v", err)
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	encodedHeader := base64.RawURLEncoding.EncodeToString(headerJSON)
	encodedPayload := base64.RawURLEncoding.EncodeToString(payloadJSON)
	signingInput := encodedHeader + "." + encodedPayload
	signature := ed25519.Sign(privateKey, []byte(signingInput))
	encodedSig := base64.RawURLEncoding.EncodeToString(signature)
	return signingInput + "." + encodedSig
}
