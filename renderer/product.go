package renderer

import (
	"bytes"
	"fmt"

	tracker "github.com/DKushman/calorie-tracker"
	md "github.com/nao1215/markdown"
)

// ProductMarkdown renders the nutrition facts of a looked-up product, per
// 100g.
func ProductMarkdown(p tracker.Product) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s (%s)", p.Name, p.Barcode))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Per 100g", "Value"},
		Rows: [][]string{
			{"Calories", fmt.Sprintf("%.1f kcal", p.CaloriesPer100g)},
			{"Protein", fmt.Sprintf("%.1fg", p.ProteinPer100g)},
			{"Carbs", fmt.Sprintf("%.1fg", p.CarbsPer100g)},
			{"Fat", fmt.Sprintf("%.1fg", p.FatPer100g)},
		},
	})

	return doc.String()
}
