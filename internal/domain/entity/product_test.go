package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		original float64
		want     int
	}{
		{"twenty percent off", 800, 1000, 20},
		{"rounds to nearest", 665, 999, 33},
		{"no original price", 499, 0, 0},
		{"original equals price", 500, 500, 0},
		{"original below price", 600, 500, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Price: tt.price, OriginalPrice: tt.original}
			assert.Equal(t, tt.want, p.DiscountPercent())
		})
	}
}

func TestColorExtraction(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{"simple", "Soft cotton tee. Color: Navy Blue", "Navy Blue"},
		{"case insensitive", "COLOR:red", "red"},
		{"absent", "Soft cotton tee", "N/A"},
		{"empty description", "", "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Description: tt.description}
			assert.Equal(t, tt.want, p.Color())
		})
	}
}

func TestFirstImagePrefersArray(t *testing.T) {
	p := Product{Image: "single.jpg", Images: []string{"first.jpg", "second.jpg"}}
	assert.Equal(t, "first.jpg", p.FirstImage())

	p = Product{Image: "single.jpg"}
	assert.Equal(t, "single.jpg", p.FirstImage())

	p = Product{}
	assert.Equal(t, "", p.FirstImage())
}

func TestMatchesPattern(t *testing.T) {
	p := Product{Pattern: "Summer Floral Dress"}
	assert.True(t, p.MatchesPattern("summer"))
	assert.True(t, p.MatchesPattern("FLORAL"))
	assert.False(t, p.MatchesPattern("winter"))
}
