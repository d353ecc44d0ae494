package plan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"proteus/internal/fault"
)

// DeriveConvertOutput builds the default convert output path: same stem with
// an .mp4 extension, or a _converted suffix when the input already is MP4.
func DeriveConvertOutput(input string) string {
	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(input, ext)
	if strings.EqualFold(ext, ".mp4") {
		return stem + "_converted.mp4"
	}
	return stem + ".mp4"
}

// DeriveCompressOutput builds the default compress output path: a
// _compressed suffix with an .mp4 extension, since the compress path always
// encodes H.264/AAC into an MP4 container.
func DeriveCompressOutput(input string) string {
	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(input, ext)
	return stem + "_compressed.mp4"
}

// DeriveSpeedOutput builds the default speed output path: a _<factor>x
// suffix. The source container extension is preserved unless convert is set,
// in which case the output is MP4.
func DeriveSpeedOutput(input string, factor float64, convert bool) string {
	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(input, ext)
	if convert || ext == "" {
		ext = ".mp4"
	}
	return fmt.Sprintf("%s_%sx%s", stem, formatFactor(factor), ext)
}

// EnsureInput verifies the input file exists and is a regular file.
func EnsureInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fault.Wrap(fault.ErrFileState, "check input",
				fmt.Sprintf("file not found: %s", path), nil)
		}
		return fault.Wrap(fault.ErrFileState, "check input", "", err)
	}
	if info.IsDir() {
		return fault.Wrap(fault.ErrFileState, "check input",
			fmt.Sprintf("%s is a directory", path), nil)
	}
	return nil
}

// EnsureOutput rejects an existing output file unless force is set. The
// check runs before any subprocess starts so a long encode never clobbers a
// file the user wanted kept.
func EnsureOutput(path string, force bool) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fault.Wrap(fault.ErrFileState, "check output", "", err)
	}
	if force {
		return nil
	}
	return fault.Wrap(fault.ErrFileState, "check output",
		fmt.Sprintf("output file already exists: %s (use --force to overwrite)", path), nil)
}
