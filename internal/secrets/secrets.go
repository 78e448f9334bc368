// Package secrets reads deployment files that may be SOPS-encrypted.
// Configs carry SMTP and admin credentials, so operators are expected
// to keep them encrypted at rest; decryption happens in memory only.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/getsops/sops/v3/decrypt"
)

// Encrypted reports whether path follows the SOPS naming convention
// (a ".sops." segment in the file name, e.g. app.sops.yml).
func Encrypted(path string) bool {
	return strings.Contains(filepath.Base(path), ".sops.")
}

// ReadFile reads path, transparently decrypting it when its name marks
// it as SOPS-encrypted. Plaintext is never written back to disk.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if !Encrypted(path) {
		return data, nil
	}

	plain, err := decrypt.Data(data, "yaml")
	if err != nil {
		return nil, fmt.Errorf("decrypt %s: %w", path, err)
	}
	return plain, nil
}
