package source

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// FileFormat represents the kinds of input files wordlore reads
type FileFormat int

const (
	FormatUnknown  FileFormat = iota
	FormatBook                // Project Gutenberg plain text release
	FormatWordList            // one word per line, most common first
)

// FormatInfo contains metadata about an input file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	MinSize     int64
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatBook: {
		Format:      FormatBook,
		Description: "Plain Text Book",
		Extensions:  []string{".txt"},
		MinSize:     1,
	},
	FormatWordList: {
		Format:      FormatWordList,
		Description: "Common Word List",
		Extensions:  []string{".txt", ".lst"},
		MinSize:     1,
	},
}

// sniffSize is how much of a file is checked for valid UTF-8.
const sniffSize = 4096

// ValidateFileFormat checks if a file matches the expected format
func ValidateFileFormat(filename string, expectedFormat FileFormat) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("%s is a directory", filename)
	}

	formatInfo, exists := GetFormatInfo(expectedFormat)
	if !exists {
		return fmt.Errorf("unknown format: %v", expectedFormat)
	}

	if fileInfo.Size() < formatInfo.MinSize {
		return fmt.Errorf("file %s is too small (%d bytes) for format %s (minimum: %d bytes)",
			filename, fileInfo.Size(), formatInfo.Description, formatInfo.MinSize)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !slices.Contains(formatInfo.Extensions, ext) {
		return fmt.Errorf("file %s has invalid extension %s for format %s (expected: %v)",
			filename, ext, formatInfo.Description, formatInfo.Extensions)
	}
	return validateTextFormat(filename)
}

// validateTextFormat rejects files whose head is not UTF-8 text.
func validateTextFormat(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	buffer := make([]byte, sniffSize)
	n, err := file.Read(buffer)
	if err != nil {
		return fmt.Errorf("failed to read from text file %s: %w", filename, err)
	}
	head := buffer[:n]
	// a multi-byte rune may be cut at the buffer end
	if n == len(buffer) {
		for i := 1; i < utf8.UTFMax && !utf8.Valid(head); i++ {
			head = head[:len(head)-1]
		}
	}
	if !utf8.Valid(head) {
		return fmt.Errorf("file %s is not valid UTF-8 text", filename)
	}

	log.Debugf("Text file %s validated", filename)
	return nil
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}
