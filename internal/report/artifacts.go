package report

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// WriteChecksums writes a sha256sum-compatible listing of the files in
// artifacts, sorted by path. Blank entries are ignored.
func WriteChecksums(checksumsPath string, artifacts []string) error {
	paths := slices.DeleteFunc(slices.Clone(artifacts), func(p string) bool {
		return strings.TrimSpace(p) == ""
	})
	slices.Sort(paths)

	var listing strings.Builder
	for _, p := range paths {
		digest, err := FileSHA256(p)
		if err != nil {
			return fmt.Errorf("checksum read failed for %s: %w", p, err)
		}
		fmt.Fprintf(&listing, "%s  %s\n", digest, filepath.Base(p))
	}
	return WriteFile(checksumsPath, []byte(listing.String()))
}

// FileSHA256 returns the hex digest of the file at path.
func FileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
