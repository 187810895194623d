// Package main provides a one-shot utility for admin-grant key generation.
//
// It emits the asymmetric keypair used to authorize compat override mutations
// on final builds.
package main

import (
	"os"

	"github.com/sdkgate/sdkgate/internal/platform/config"
	"github.com/sdkgate/sdkgate/internal/tools/grantkey"
)

func main() {
	if err := grantkey.Run(os.Stdout, nil); err != nil {
		config.Exitf("generate admin grant key: %v", err)
	}
}
