package grantkey

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/sdkgate/sdkgate/internal/services/compat/adminauth"
)

// envGrantPrivateKey names the signing key export. The compat service never
// reads it; it belongs to whatever mints admin grants.
const envGrantPrivateKey = "SDKGATE_ADMIN_GRANT_PRIVATE_KEY"

// Run generates an admin grant key pair and writes exports.
func Run(out io.Writer, reader io.Reader) error {
	if out == nil {
		return errors.New("output is required")
	}
	if reader == nil {
		reader = rand.Reader
	}
	publicKey, privateKey, err := ed25519.GenerateKey(reader)
	if err != nil {
		return fmt.Errorf("generate admin grant key: %w", err)
	}
	if _, err := fmt.Fprintf(out, "export %s=%s\n", envGrantPrivateKey, base64.RawStdEncoding.EncodeToString(privateKey)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "export %s=%s\n", adminauth.EnvGrantPublicKey, base64.RawStdEncoding.EncodeToString(publicKey)); err != nil {
		return err
	}
	return nil
}
