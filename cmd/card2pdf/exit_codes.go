package main

import (
	"errors"
	"os"

	card2pdf "github.com/alnah/go-card2pdf"
	"github.com/alnah/go-card2pdf/internal/config"
)

// Exit codes for card2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All cards rendered
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, assets or card data
	ExitIO      = 3 // File not found, permission denied
	ExitLayout  = 5 // Some cards fit no template
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Layout errors (exit 5)
	if errors.Is(err, card2pdf.ErrTemplateTooSmall) {
		return ExitLayout
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadCards) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, card2pdf.ErrInvalidBlockData) ||
		errors.Is(err, card2pdf.ErrEmptyInput) ||
		errors.Is(err, card2pdf.ErrUnknownTemplate) ||
		errors.Is(err, card2pdf.ErrNoTemplates) ||
		errors.Is(err, card2pdf.ErrImageLoad) ||
		errors.Is(err, card2pdf.ErrStyleSetNotFound) ||
		errors.Is(err, card2pdf.ErrFontNotFound) ||
		errors.Is(err, card2pdf.ErrInvalidAssetPath) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
