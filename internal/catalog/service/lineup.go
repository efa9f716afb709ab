package service

import (
	"strings"

	"figure-catalog/internal/catalog/model"
)

// LineUpClassifier detects the product line a name belongs to by scanning for
// canonical labels as substrings, in model.LineUps declaration order. Because
// "Myth Cloth EX" contains "Myth Cloth", the ordering of that slice is load
// bearing: most specific label first.
type LineUpClassifier struct {
	Default model.LineUp
}

func NewLineUpClassifier() LineUpClassifier {
	return LineUpClassifier{Default: model.MythCloth}
}

// Classify never fails; when no label occurs in text it returns the default
// (the most common line).
func (c LineUpClassifier) Classify(text string) model.LineUp {
	t := strings.ToLower(text)
	for _, l := range model.LineUps {
		if strings.Contains(t, strings.ToLower(l.Label())) {
			return l
		}
	}
	return c.Default
}
