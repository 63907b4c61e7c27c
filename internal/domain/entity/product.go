package entity

import (
	"math"
	"regexp"
	"strings"
	"time"
)

type Product struct {
	ID             string    `json:"id" firestore:"id"`
	Name           string    `json:"name" firestore:"name"`
	Pattern        string    `json:"pattern" firestore:"pattern"`
	Category       string    `json:"category" firestore:"category"`
	CategoryID     string    `json:"category_id,omitempty" firestore:"categoryId,omitempty"`
	Brand          string    `json:"brand,omitempty" firestore:"brand,omitempty"`
	Description    string    `json:"description" firestore:"description"`
	Price          float64   `json:"price" firestore:"price"`
	OriginalPrice  float64   `json:"original_price,omitempty" firestore:"originalPrice,omitempty"`
	Image          string    `json:"image,omitempty" firestore:"image,omitempty"`
	Images         []string  `json:"images,omitempty" firestore:"images,omitempty"`
	SKU            string    `json:"sku,omitempty" firestore:"sku,omitempty"`
	SellerID       string    `json:"seller_id,omitempty" firestore:"sellerId,omitempty"`
	SearchKeywords []string  `json:"search_keywords,omitempty" firestore:"searchkeywords,omitempty"`
	CreatedAt      time.Time `json:"created_at" firestore:"createdAt"`
}

var colorPattern = regexp.MustCompile(`(?i)color:\s*([a-zA-Z\s]+)`)

// Color extracts the display color from the free-text description.
// Product documents have no dedicated color field; sellers encode it as
// "color: <value>" inside the description.
func (p *Product) Color() string {
	match := colorPattern.FindStringSubmatch(p.Description)
	if match == nil {
		return "N/A"
	}
	return strings.TrimSpace(match[1])
}

// FirstImage returns the primary image URL, coalescing the two shapes
// product documents use (single string vs array).
func (p *Product) FirstImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return p.Image
}

// DiscountPercent is the rounded percentage saved against the original
// price, 0 when no real discount exists.
func (p *Product) DiscountPercent() int {
	if p.OriginalPrice <= p.Price {
		return 0
	}
	return int(math.Round((p.OriginalPrice - p.Price) / p.OriginalPrice * 100))
}

// MatchesPattern reports whether term is a case-insensitive substring of
// the product's display name.
func (p *Product) MatchesPattern(term string) bool {
	return strings.Contains(strings.ToLower(p.Pattern), strings.ToLower(term))
}
