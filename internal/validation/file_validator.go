// Package validation checks input files and directories before the
// extraction pipeline touches them.
package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileValidator validates extractor inputs and outputs.
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a file validator.
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{logger: logger}
}

// ValidateInputDirectory checks that the input directory exists and logs
// how many files match the given glob pattern. A directory with no
// matching files is not an error; there is simply nothing to process.
func (v *FileValidator) ValidateInputDirectory(dir, pattern string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return fmt.Errorf("input directory %s does not exist", dir)
	}
	if err != nil {
		return fmt.Errorf("failed to stat directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	if pattern != "" {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return fmt.Errorf("failed to check for files: %w", err)
		}
		v.logger.Info("input directory validated",
			slog.String("directory", dir),
			slog.String("pattern", pattern),
			slog.Int("files_found", len(matches)))
	}
	return nil
}

// ValidateOutputDirectory ensures the output directory exists and is
// writable, creating it when missing.
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	testFile := filepath.Join(dir, ".write_test")
	file, err := os.Create(testFile)
	if err != nil {
		return fmt.Errorf("output directory %s is not writable: %w", dir, err)
	}
	file.Close()
	os.Remove(testFile)

	v.logger.Debug("output directory validated", slog.String("directory", dir))
	return nil
}

// ValidateWorkbookFile checks that the path names a readable Excel
// workbook and is not an editor temp file.
func (v *FileValidator) ValidateWorkbookFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("file %s does not exist", path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".xlsx" && ext != ".xls" {
		return fmt.Errorf("file %s is not an Excel workbook (extension: %s)", path, ext)
	}
	if strings.HasPrefix(filepath.Base(path), "~$") {
		return fmt.Errorf("file %s is a temporary Excel file", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("file %s is not readable: %w", path, err)
	}
	file.Close()

	v.logger.Debug("workbook file validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}
