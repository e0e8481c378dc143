package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/kassenbon/internal/model"
)

// Validation errors.
var (
	ErrNilContext        = errors.New("context cannot be nil")
	ErrEmptyString       = errors.New("string parameter cannot be empty")
	ErrNilParameter      = errors.New("parameter cannot be nil")
	ErrInvalidReceipt    = errors.New("invalid receipt")
	ErrInvalidItem       = errors.New("invalid line item")
	ErrInvalidSection    = errors.New("invalid storage section")
	ErrReceiptNotFound   = errors.New("receipt not found")
	ErrInvalidCorrection = errors.New("invalid correction")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateReceipt validates a receipt before persistence.
func validateReceipt(receipt *model.Receipt) error {
	if receipt == nil {
		return fmt.Errorf("%w: receipt", ErrNilParameter)
	}
	if receipt.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidReceipt)
	}
	for i, item := range receipt.Items {
		if err := validateItem(&item); err != nil {
			return fmt.Errorf("item at index %d: %w", i, err)
		}
	}
	return nil
}

// validateItem validates a single line item.
func validateItem(item *model.LineItem) error {
	if item.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidItem)
	}
	if item.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidItem)
	}
	if item.Section != "" && !item.Section.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSection, item.Section)
	}
	return nil
}

// validateCorrection validates a section correction.
func validateCorrection(correction *model.SectionCorrection) error {
	if correction == nil {
		return fmt.Errorf("%w: correction", ErrNilParameter)
	}
	if correction.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidCorrection)
	}
	if !correction.Section.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSection, correction.Section)
	}
	return nil
}
