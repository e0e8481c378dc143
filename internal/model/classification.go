package model

import "time"

// ClassificationMethod identifies which tier produced a classification.
type ClassificationMethod string

const (
	// MethodRules means the keyword tables decided the section.
	MethodRules ClassificationMethod = "rules"
	// MethodModel means the trained model decided the section.
	MethodModel ClassificationMethod = "model"
)

// ClassificationResult is the outcome of classifying one product name into a
// storage section.
type ClassificationResult struct {
	Section    StorageSection
	Method     ClassificationMethod
	Confidence float64
}

// SectionCorrection records a user's manual re-sectioning of a line item. It
// feeds the classifier's rule data one way; the pipeline never reads it back
// synchronously.
type SectionCorrection struct {
	CreatedAt time.Time
	ReceiptID string
	ItemID    string
	Name      string
	Section   StorageSection
}
