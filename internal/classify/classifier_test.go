package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/kassenbon/internal/model"
	"github.com/Veraticus/kassenbon/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubModel is a canned ModelClassifier for tests.
type stubModel struct {
	prediction service.ModelPrediction
	err        error
	calls      int
}

func (s *stubModel) Predict(_ context.Context, _ string) (service.ModelPrediction, error) {
	s.calls++
	return s.prediction, s.err
}

func TestClassify_RuleTables(t *testing.T) {
	c := New()

	tests := []struct {
		name        string
		product     string
		wantSection model.StorageSection
	}{
		{name: "german dairy", product: "Vollmilch 3,5%", wantSection: model.SectionFridge},
		{name: "german cheese", product: "Gouda Käse jung", wantSection: model.SectionFridge},
		{name: "french dairy", product: "Yaourt nature x4", wantSection: model.SectionFridge},
		{name: "german frozen prefix", product: "TK Spinat 450g", wantSection: model.SectionFreezer},
		{name: "german ice cream", product: "Eiscreme Vanille", wantSection: model.SectionFreezer},
		{name: "french frozen", product: "Glace vanille 500ml", wantSection: model.SectionFreezer},
		{name: "german staple", product: "Spaghetti 500g", wantSection: model.SectionPantry},
		{name: "french staple", product: "Farine de blé T55", wantSection: model.SectionPantry},
		{name: "deposit", product: "Pfand 0,25", wantSection: model.SectionUnclassified},
		{name: "carrier bag", product: "Tragetasche", wantSection: model.SectionUnclassified},
		{name: "french deposit", product: "Consigne bouteille", wantSection: model.SectionUnclassified},
		{name: "no keyword defaults to pantry", product: "Bananen", wantSection: model.SectionPantry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(context.Background(), tt.product)

			assert.Equal(t, tt.wantSection, result.Section)
			assert.Equal(t, model.MethodRules, result.Method)
		})
	}
}

func TestClassify_DefaultHasLowerConfidenceThanKeywordHit(t *testing.T) {
	c := New()

	hit := c.Classify(context.Background(), "Vollmilch")
	fallback := c.Classify(context.Background(), "Bananen")

	assert.Greater(t, hit.Confidence, fallback.Confidence)
}

func TestClassify_ConfidentModelWins(t *testing.T) {
	stub := &stubModel{prediction: service.ModelPrediction{Section: model.SectionFreezer, Confidence: 0.92}}
	c := New(WithModel(stub))

	result := c.Classify(context.Background(), "Vollmilch")

	assert.Equal(t, model.SectionFreezer, result.Section, "a confident model overrides the keyword tables")
	assert.Equal(t, model.MethodModel, result.Method)
	assert.InDelta(t, 0.92, result.Confidence, 0.001)
}

func TestClassify_UnconfidentModelFallsBackToRules(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
	}{
		{name: "below threshold", confidence: 0.5},
		{name: "exactly at threshold", confidence: 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubModel{prediction: service.ModelPrediction{Section: model.SectionFreezer, Confidence: tt.confidence}}
			c := New(WithModel(stub))

			result := c.Classify(context.Background(), "Vollmilch")

			assert.Equal(t, model.SectionFridge, result.Section)
			assert.Equal(t, model.MethodRules, result.Method)
			assert.Equal(t, 1, stub.calls)
		})
	}
}

func TestClassify_ModelErrorFallsBackToRules(t *testing.T) {
	stub := &stubModel{err: errors.New("model artifact unreadable")}
	c := New(WithModel(stub))

	result := c.Classify(context.Background(), "Vollmilch")

	assert.Equal(t, model.SectionFridge, result.Section)
	assert.Equal(t, model.MethodRules, result.Method)
	assert.Greater(t, stub.calls, 1, "prediction is retried before giving up")
}

func TestClassify_InvalidModelSectionFallsBackToRules(t *testing.T) {
	stub := &stubModel{prediction: service.ModelPrediction{Section: "attic", Confidence: 0.99}}
	c := New(WithModel(stub))

	result := c.Classify(context.Background(), "Vollmilch")

	assert.Equal(t, model.SectionFridge, result.Section)
	assert.Equal(t, model.MethodRules, result.Method)
}

func TestClassifyItems_SectionsEveryItem(t *testing.T) {
	c := New()
	receipt := &model.Receipt{
		Items: []model.LineItem{
			model.NewLineItem("Vollmilch 1,09 A", "Vollmilch", 1.09),
			model.NewLineItem("TK Spinat 1,49 A", "TK Spinat", 1.49),
			model.NewLineItem("Bananen 1,79 A", "Bananen", 1.79),
		},
	}

	c.ClassifyItems(context.Background(), receipt)

	require.Len(t, receipt.Items, 3)
	assert.Equal(t, model.SectionFridge, receipt.Items[0].Section)
	assert.Equal(t, model.SectionFreezer, receipt.Items[1].Section)
	assert.Equal(t, model.SectionPantry, receipt.Items[2].Section)
}
