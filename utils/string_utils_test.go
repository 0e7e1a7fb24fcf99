package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "jose", Normalize("José"))
	assert.Equal(t, "oldrichss, splacaek", Normalize("Øldřichß, Špłačæk"))
	assert.Equal(t, "tiger", Normalize("Tiger虎"))
	assert.Equal(t, "", Normalize(""))
}

func TestNormalizeArray(t *testing.T) {
	a := []string{"Cañón", "ẞ", "Praha"}
	out := NormalizeArray(a)
	assert.Equal(t, []string{"canon", "ss", "praha"}, out)
	assert.Equal(t, out, a)
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("Jiří Dvořák", "jiri dvorak"))
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.Less(t, Similarity("Jiří", "Tomáš"), 0.7)
	assert.Greater(t, Similarity("Łukasz Kowalski", "Lukas Kowalski"), 0.9)
}

func TestMatch(t *testing.T) {
	assert.True(t, Match("Zoë", "Zoe", 0.9))
	assert.True(t, Match("Strasse", "Straße", 1))
	assert.False(t, Match("Ørsted", "Anderson", 0.8))
}
