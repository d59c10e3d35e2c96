package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dramhound/dramhound/constants"
)

func TestNormalizeSpiritType(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"Bourbon", "bourbon", true},
		{"  Islay ", "scotch", true},
		{"Single Malt", "single_malt", true},
		{"single_malt", "single_malt", true},
		{"Tennessee Whiskey", "american", true},
		{"whisky", "other", true},
		{"gin", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeSpiritType(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestNormalizePourSize(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"1 oz", "1oz", true},
		{"dram", "1oz", true},
		{"Half Pour", "0.5oz", true},
		{"taste", "0.5oz", true},
		{"2oz", "2oz", true},
		{"60ml", "2oz", true},
		{"bucket", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizePourSize(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestFinalizeRoutesLowConfidenceToReview(t *testing.T) {
	menu := &ExtractedMenu{ExtractionMethod: constants.MethodText, Confidence: 0.3}
	Finalize(menu)
	assert.Equal(t, constants.MethodReview, menu.ExtractionMethod)
	assert.NotNil(t, menu.Whiskeys)

	menu = &ExtractedMenu{ExtractionMethod: constants.MethodVision, Confidence: 0.9}
	Finalize(menu)
	assert.Equal(t, constants.MethodVision, menu.ExtractionMethod)
}

func TestFinalizeClampsConfidence(t *testing.T) {
	menu := &ExtractedMenu{ExtractionMethod: constants.MethodText, Confidence: 1.7}
	Finalize(menu)
	assert.Equal(t, float32(1), menu.Confidence)

	menu = &ExtractedMenu{ExtractionMethod: constants.MethodText, Confidence: -0.2}
	Finalize(menu)
	assert.Equal(t, float32(0), menu.Confidence)
	assert.Equal(t, constants.MethodReview, menu.ExtractionMethod)
}
