package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

var wordListExtensions = []string{".txt", ".list", ""}

// ValidateWordList checks that path is a readable, non-empty regular file.
// Unusual extensions are only reported.
func ValidateWordList(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat word list %s: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("word list %s is a directory", path)
	}

	if info.Size() == 0 {
		return fmt.Errorf("word list %s is empty", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	validExt := false
	for _, e := range wordListExtensions {
		if ext == e {
			validExt = true
			break
		}
	}
	if !validExt {
		log.Warnf("Word list %s has unexpected extension %s (expected one of %v)", path, ext, wordListExtensions)
	}

	log.Debugf("Word list %s validated: %d bytes", path, info.Size())
	return nil
}
