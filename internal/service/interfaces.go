// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/kassenbon/internal/model"
)

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Receipt operations
	SaveReceipt(ctx context.Context, receipt *model.Receipt, confidence *model.ReceiptConfidence) error
	GetReceipt(ctx context.Context, id string) (*model.Receipt, error)
	ListReceipts(ctx context.Context, limit int) ([]model.Receipt, error)

	// Correction operations (the one-way feedback channel: user edits feed
	// the classifier's rule data, the pipeline never reads them back
	// synchronously)
	SaveCorrection(ctx context.Context, correction *model.SectionCorrection) error
	GetCorrections(ctx context.Context) ([]model.SectionCorrection, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// ModelPrediction is the output of the optional trained classifier.
type ModelPrediction struct {
	Section    model.StorageSection
	Confidence float64
}

// ModelClassifier is the optional trained model consulted by the product
// classifier before the keyword tables. Implementations are read-only
// artifacts; the pipeline never trains or mutates them.
type ModelClassifier interface {
	Predict(ctx context.Context, productName string) (ModelPrediction, error)
}

// ReportWriter exports parsed receipts to an external report target.
type ReportWriter interface {
	Write(ctx context.Context, receipts []model.Receipt) error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
