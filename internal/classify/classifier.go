// Package classify assigns storage sections to parsed products. A trained
// model, when configured, is consulted first; the bilingual keyword tables are
// the cold-start default and the safety net when the model is absent, errors,
// or is not confident enough.
package classify

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/kassenbon/internal/common"
	"github.com/Veraticus/kassenbon/internal/model"
	"github.com/Veraticus/kassenbon/internal/service"
)

// modelConfidenceThreshold is the minimum model confidence required before a
// model prediction overrides the keyword tables.
const modelConfidenceThreshold = 0.7

// Rule-tier confidence values. The keyword tables are deterministic, so these
// communicate how specific the decision was rather than any real uncertainty.
const (
	ruleMatchConfidence   = 0.8
	ruleDepositConfidence = 0.9
	ruleDefaultConfidence = 0.5
)

// Classifier maps cleaned product names to storage sections.
type Classifier struct {
	model     service.ModelClassifier
	retryOpts service.RetryOptions
}

// Option customizes a Classifier.
type Option func(*Classifier)

// WithModel configures the optional trained model consulted before the
// keyword tables.
func WithModel(m service.ModelClassifier) Option {
	return func(c *Classifier) {
		c.model = m
	}
}

// New creates a Classifier. Without options it runs on the keyword tables
// alone.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		retryOpts: service.RetryOptions{
			MaxAttempts:  2,
			InitialDelay: 50 * time.Millisecond,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns the storage section for one product name.
func (c *Classifier) Classify(ctx context.Context, name string) model.ClassificationResult {
	if c.model != nil {
		if result, ok := c.classifyWithModel(ctx, name); ok {
			return result
		}
	}
	return classifyWithRules(name)
}

// ClassifyItems sections every item on a receipt in place.
func (c *Classifier) ClassifyItems(ctx context.Context, receipt *model.Receipt) {
	for i := range receipt.Items {
		result := c.Classify(ctx, receipt.Items[i].Name)
		receipt.Items[i].Section = result.Section
	}
}

// classifyWithModel asks the trained model for a prediction. Model failures
// and low-confidence predictions are not errors; the rule tier takes over.
func (c *Classifier) classifyWithModel(ctx context.Context, name string) (model.ClassificationResult, bool) {
	var prediction service.ModelPrediction

	err := common.WithRetry(ctx, func() error {
		var predictErr error
		prediction, predictErr = c.model.Predict(ctx, name)
		return predictErr
	}, c.retryOpts)
	if err != nil {
		slog.Debug("Model prediction failed, falling back to rules",
			"product", name,
			"error", err)
		return model.ClassificationResult{}, false
	}

	if prediction.Confidence <= modelConfidenceThreshold || !prediction.Section.IsValid() {
		return model.ClassificationResult{}, false
	}

	return model.ClassificationResult{
		Section:    prediction.Section,
		Method:     model.MethodModel,
		Confidence: prediction.Confidence,
	}, true
}

// classifyWithRules runs the ordered keyword-table lookup: deposits and bags
// first, then fridge, freezer, and pantry. Anything food-looking with no
// keyword hit defaults to the pantry.
func classifyWithRules(name string) model.ClassificationResult {
	upper := strings.ToUpper(name)

	for _, keyword := range depositKeywords {
		if strings.Contains(upper, keyword) {
			return model.ClassificationResult{
				Section:    model.SectionUnclassified,
				Method:     model.MethodRules,
				Confidence: ruleDepositConfidence,
			}
		}
	}

	for _, table := range ruleTables {
		for _, keyword := range table.keywords {
			if strings.Contains(upper, keyword) {
				return model.ClassificationResult{
					Section:    table.section,
					Method:     model.MethodRules,
					Confidence: ruleMatchConfidence,
				}
			}
		}
	}

	return model.ClassificationResult{
		Section:    model.SectionPantry,
		Method:     model.MethodRules,
		Confidence: ruleDefaultConfidence,
	}
}
