package cli

import (
	"fmt"
	"strings"

	"github.com/Veraticus/kassenbon/internal/model"
)

// sectionLabels are the display names for storage sections.
var sectionLabels = map[model.StorageSection]string{
	model.SectionFridge:       "Fridge",
	model.SectionFreezer:      "Freezer",
	model.SectionPantry:       "Pantry",
	model.SectionUnclassified: "Unclassified",
}

// RenderReceipt formats a parsed receipt for terminal display: items grouped
// by storage section, then the total.
func RenderReceipt(receipt *model.Receipt) string {
	var b strings.Builder

	storeName := receipt.StoreName
	if storeName == "" {
		storeName = "Unknown store"
	}
	b.WriteString(FormatTitle(fmt.Sprintf("%s — %s", storeName, receipt.Date.Format("02.01.2006"))))
	b.WriteString("\n")

	for _, section := range model.ValidSections {
		var lines []string
		for _, item := range receipt.Items {
			if item.Section == section {
				lines = append(lines, fmt.Sprintf("  %-40s %8.2f €", item.Name, item.Price))
			}
		}
		if len(lines) == 0 {
			continue
		}
		b.WriteString(BoldStyle.Render(sectionLabels[section]))
		b.WriteString("\n")
		b.WriteString(strings.Join(lines, "\n"))
		b.WriteString("\n")
	}

	b.WriteString(SubtleStyle.Render(strings.Repeat("─", 52)))
	b.WriteString("\n")
	b.WriteString(BoldStyle.Render(fmt.Sprintf("  %-40s %8.2f €", "Total", receipt.Total)))
	b.WriteString("\n")

	return b.String()
}

// RenderConfidence formats a confidence result: the rating, the score, and
// any issues worth surfacing.
func RenderConfidence(conf *model.ReceiptConfidence) string {
	var b strings.Builder

	rating := fmt.Sprintf("Confidence: %s (%.0f%%)", conf.Rating, conf.Score*100)
	switch conf.Rating {
	case model.RatingHigh:
		b.WriteString(FormatSuccess(rating))
	case model.RatingMedium:
		b.WriteString(FormatWarning(rating))
	default:
		b.WriteString(FormatError(rating))
	}
	b.WriteString("\n")

	for _, issue := range conf.Issues {
		b.WriteString(SubtleStyle.Render("  • " + issue))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderReceiptSummary formats one receipt as a single history line.
func RenderReceiptSummary(receipt *model.Receipt) string {
	storeName := receipt.StoreName
	if storeName == "" {
		storeName = "Unknown"
	}
	return fmt.Sprintf("%s  %-24s %3d items %10.2f €  %s",
		receipt.Date.Format("02.01.2006"),
		storeName,
		len(receipt.Items),
		receipt.Total,
		SubtleStyle.Render(receipt.ID))
}
