// Package engine orchestrates the receipt interpretation pipeline: normalize,
// detect the store, parse with the matching grammar or the generic fallback,
// classify products into storage sections, and score the result.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/kassenbon/internal/classify"
	"github.com/Veraticus/kassenbon/internal/common"
	"github.com/Veraticus/kassenbon/internal/confidence"
	"github.com/Veraticus/kassenbon/internal/model"
	"github.com/Veraticus/kassenbon/internal/normalize"
	"github.com/Veraticus/kassenbon/internal/parser"
	"github.com/Veraticus/kassenbon/internal/store"
)

// State is the pipeline stage a parse request is in. A Result always carries
// the terminal state, StateDone or StateFailed; the intermediate states exist
// for progress logging.
type State string

const (
	// StateDetecting means the store detector is running.
	StateDetecting State = "detecting"
	// StateParsing means a grammar or the fallback is extracting items.
	StateParsing State = "parsing"
	// StateScoring means the confidence scorer is running.
	StateScoring State = "scoring"
	// StateDone means a receipt and its confidence are available.
	StateDone State = "done"
	// StateFailed means no receipt could be extracted at all.
	StateFailed State = "failed"
)

// Result is the outcome of one parse request. On StateDone, Receipt and
// Confidence are populated and immutable; on StateFailed both are nil. A
// low-confidence Result is still StateDone: the caller distinguishes "ask the
// user to retry" from "ask the user to review" by the state, not the rating.
type Result struct {
	Receipt      *model.Receipt
	Confidence   *model.ReceiptConfidence
	Match        *model.StoreMatch // nil when no store was detected
	FallbackUsed bool
	State        State
}

// Engine runs the pipeline. It holds only read-only configuration, so one
// Engine serves any number of concurrent Parse calls.
type Engine struct {
	normalizer *normalize.Normalizer
	registry   *store.Registry
	detector   *store.Detector
	parser     *parser.Parser
	classifier *classify.Classifier
	scorer     *confidence.Scorer
}

// Option customizes an Engine.
type Option func(*Engine)

// WithNormalizer replaces the default normalizer, e.g. one carrying
// user-supplied correction tables.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(e *Engine) {
		e.normalizer = n
	}
}

// WithClassifier replaces the default rules-only classifier, e.g. one backed
// by a trained model.
func WithClassifier(c *classify.Classifier) Option {
	return func(e *Engine) {
		e.classifier = c
	}
}

// WithParser replaces the default parser.
func WithParser(p *parser.Parser) Option {
	return func(e *Engine) {
		e.parser = p
	}
}

// WithScorer replaces the default confidence scorer.
func WithScorer(s *confidence.Scorer) Option {
	return func(e *Engine) {
		e.scorer = s
	}
}

// New creates an Engine over a profile registry.
func New(registry *store.Registry, opts ...Option) *Engine {
	e := &Engine{
		normalizer: normalize.New(),
		registry:   registry,
		detector:   store.NewDetector(registry),
		parser:     parser.New(),
		classifier: classify.New(),
		scorer:     confidence.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Parse interprets one receipt's OCR text end to end. It returns a Result in
// StateDone together with a nil error, or a Result in StateFailed together
// with the reason. Expected parse failures surface as sentinel errors, never
// as partial receipts.
func (e *Engine) Parse(ctx context.Context, text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return &Result{State: StateFailed}, common.ErrEmptyInput
	}

	normalized := e.normalizer.Normalize(text)

	slog.Debug("pipeline stage", "state", StateDetecting)
	match := e.detector.Detect(normalized)

	slog.Debug("pipeline stage", "state", StateParsing)
	receipt, fallbackUsed, err := e.parse(normalized, match)
	if err != nil {
		return &Result{State: StateFailed}, err
	}

	e.classifier.ClassifyItems(ctx, receipt)

	slog.Debug("pipeline stage", "state", StateScoring)
	storeConfidence := 0.0
	if match != nil {
		storeConfidence = match.Confidence
	}
	conf := e.scorer.Score(receipt, text, storeConfidence)

	slog.Debug("parsed receipt",
		"store", receipt.StoreName,
		"items", len(receipt.Items),
		"total", receipt.Total,
		"rating", conf.Rating,
		"fallback", fallbackUsed)

	return &Result{
		Receipt:      receipt,
		Confidence:   conf,
		Match:        match,
		FallbackUsed: fallbackUsed,
		State:        StateDone,
	}, nil
}

// parse tries the detected profile's grammar first and falls back to the
// generic parser when detection failed or the grammar extracted nothing.
func (e *Engine) parse(normalized string, match *model.StoreMatch) (*model.Receipt, bool, error) {
	if match != nil {
		receipt, err := e.parser.ParseWithProfile(normalized, e.registry.Get(match.ProfileID))
		if err == nil {
			return receipt, false, nil
		}
		slog.Debug("profile parse failed, trying generic fallback",
			"profile", match.ProfileID,
			"error", err)
	}

	receipt, err := e.parser.ParseGeneric(normalized)
	if err != nil {
		if match == nil {
			return nil, true, fmt.Errorf("%w: generic fallback found nothing", common.ErrNoStoreDetected)
		}
		return nil, true, fmt.Errorf("profile %s and generic fallback both failed: %w", match.ProfileID, err)
	}

	if match != nil {
		// The grammar failed but the fallback succeeded; keep the detected
		// store name on the receipt.
		receipt.StoreName = match.DisplayName
		return receipt, true, nil
	}

	return receipt, true, nil
}
