package gradle

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// SignResult reports a signing attempt.
type SignResult struct {
	Success    bool   `json:"success"`
	SignedPath string `json:"signed_apk,omitempty"`
	Err        string `json:"error,omitempty"`
}

// Sign copies the artifact to a "-signed" name. No cryptographic signing
// happens: the keystore parameters are accepted for interface compatibility
// only, and the output must not be treated as a signed package.
func Sign(artifactPath, keystorePath, keystorePassword, keyAlias string) (*SignResult, error) {
	signedPath := strings.TrimSuffix(artifactPath, ".apk") + "-signed.apk"

	src, err := os.Open(artifactPath)
	if err != nil {
		return &SignResult{Success: false, Err: err.Error()}, nil
	}
	defer src.Close()

	dst, err := os.Create(signedPath)
	if err != nil {
		return &SignResult{Success: false, Err: err.Error()}, nil
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("copy %s: %w", artifactPath, err)
	}

	return &SignResult{Success: true, SignedPath: signedPath}, nil
}
