package renderer

import (
	"bytes"

	tracker "github.com/DKushman/calorie-tracker"
	md "github.com/nao1215/markdown"
)

// GoalsMarkdown renders the current goal set. Unset goals show as untracked,
// which is not the same as zero.
func GoalsMarkdown(g tracker.Goals) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Daily Goals")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Nutrient", "Goal"},
	}
	row := func(name string, v tracker.Amount, set bool, unit string) {
		value := "untracked"
		if set {
			value = v.String() + unit
		}
		table.Rows = append(table.Rows, []string{name, value})
	}

	calories, calSet := g.Calories()
	protein, proSet := g.Protein()
	carbs, carbSet := g.Carbs()
	fat, fatSet := g.Fat()

	row("Calories", calories, calSet, " kcal")
	row("Protein", protein, proSet, "g")
	row("Carbs", carbs, carbSet, "g")
	row("Fat", fat, fatSet, "g")

	doc.Table(table)
	return doc.String()
}
