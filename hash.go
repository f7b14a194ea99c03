package dynaudnorm

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	binaryHashOnce  sync.Once
	binaryHashValue string
	binaryHashError error
)

// BinaryHash returns the hex SHA-256 of the running executable. Together
// with the fingerprint it pins a crash report to one exact artifact. The
// result is computed once per process.
func BinaryHash() (string, error) {
	binaryHashOnce.Do(func() {
		exe, err := os.Executable()
		if err != nil {
			binaryHashError = fmt.Errorf("get executable path: %w", err)
			return
		}
		binaryHashValue, binaryHashError = hashFile(exe)
	})
	return binaryHashValue, binaryHashError
}

func hashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
