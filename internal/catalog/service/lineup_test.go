package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"figure-catalog/internal/catalog/model"
)

func TestClassifyPrefersMoreSpecificLabel(t *testing.T) {
	c := NewLineUpClassifier()

	// "Myth Cloth EX" contains "Myth Cloth"; declaration order must win.
	assert.Equal(t, model.MythClothEX, c.Classify("Myth Cloth EX Gemini Saga"))
	assert.Equal(t, model.MythCloth, c.Classify("Myth Cloth Pegasus Seiya"))
	assert.Equal(t, model.FiguartsZero, c.Classify("figuarts zero Athena"))
	assert.Equal(t, model.Figuarts, c.Classify("Figuarts Ikki"))
}

func TestClassifyCaseInsensitive(t *testing.T) {
	c := NewLineUpClassifier()
	assert.Equal(t, model.Crown, c.Classify("saint cloth CROWN Poseidon"))
}

func TestClassifyDefaultWhenNoLabelMatches(t *testing.T) {
	c := NewLineUpClassifier()
	assert.Equal(t, model.MythCloth, c.Classify("Gemini Saga GOLD24"))

	c.Default = model.MythClothEX
	assert.Equal(t, model.MythClothEX, c.Classify("no labels here"))
}
