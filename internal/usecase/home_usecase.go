package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"trendkart/internal/domain/entity"
	"trendkart/internal/domain/repository"
	"trendkart/internal/infrastructure/cache"
	"trendkart/pkg/errors"
	"trendkart/pkg/logger"
)

// SectionSize is how many promotion tiles a homepage section shows.
const SectionSize = 4

// SectionConfig drives one homepage category section. All twelve
// sections share a single implementation parameterized by this table.
type SectionConfig struct {
	Key           string  `json:"key"`
	Category      string  `json:"category"`
	Title         string  `json:"title"`
	FallbackName  string  `json:"-"`
	FallbackBrand string  `json:"-"`
	DefaultPrice  float64 `json:"-"`
	DefaultMRP    float64 `json:"-"`
}

// HomeSections is the storefront's homepage layout, top to bottom.
var HomeSections = []SectionConfig{
	{Key: "mens", Category: "Mens", Title: "Mens Essentials", FallbackName: "Casual Linen Shirt", FallbackBrand: "MODERN MAN", DefaultPrice: 1299, DefaultMRP: 1999},
	{Key: "kids", Category: "Kids", Title: "Kids Corner", FallbackName: "Printed Cotton Tee", FallbackBrand: "TINY TRENDS", DefaultPrice: 499, DefaultMRP: 799},
	{Key: "fashion", Category: "Fashion", Title: "Fashion Picks", FallbackName: "Floral Summer Dress", FallbackBrand: "URBAN MUSE", DefaultPrice: 999, DefaultMRP: 1599},
	{Key: "electronics", Category: "Electronics", Title: "Electronics Deals", FallbackName: "Wireless Earbuds", FallbackBrand: "VOLTEDGE", DefaultPrice: 1499, DefaultMRP: 2499},
	{Key: "jewellery", Category: "Jewellery", Title: "Jewellery Showcase", FallbackName: "Gold Plated Necklace", FallbackBrand: "AURELLE", DefaultPrice: 799, DefaultMRP: 1299},
	{Key: "footwears", Category: "Footwears", Title: "Footwear Studio", FallbackName: "Classic Canvas Sneakers", FallbackBrand: "STRIDEX", DefaultPrice: 899, DefaultMRP: 1499},
	{Key: "toys", Category: "Toys", Title: "Toys & Games", FallbackName: "Building Blocks Set", FallbackBrand: "PLAYNEST", DefaultPrice: 599, DefaultMRP: 999},
	{Key: "books", Category: "Books", Title: "Book Shelf", FallbackName: "Bestseller Paperback", FallbackBrand: "PAGETURN", DefaultPrice: 299, DefaultMRP: 499},
	{Key: "stationary", Category: "Stationary", Title: "Stationery Desk", FallbackName: "Hardbound Notebook", FallbackBrand: "SCRIBBLY", DefaultPrice: 199, DefaultMRP: 349},
	{Key: "cosmetics", Category: "Cosmetics", Title: "Beauty Bar", FallbackName: "Matte Lipstick", FallbackBrand: "GLOWVEDA", DefaultPrice: 399, DefaultMRP: 699},
	{Key: "accessories", Category: "Accessories", Title: "Accessories Wall", FallbackName: "Leather Strap Watch", FallbackBrand: "TIMURA", DefaultPrice: 1099, DefaultMRP: 1799},
	{Key: "personal-care", Category: "PersonalCare", Title: "Personal Care", FallbackName: "Herbal Face Wash", FallbackBrand: "PURELEAF", DefaultPrice: 249, DefaultMRP: 399},
}

type HomeUseCase struct {
	productRepo repository.ProductRepository
	cache       cache.Cache
	cacheTTL    time.Duration
	sections    []SectionConfig
}

func NewHomeUseCase(productRepo repository.ProductRepository, c cache.Cache, cacheTTL time.Duration) *HomeUseCase {
	return &HomeUseCase{
		productRepo: productRepo,
		cache:       c,
		cacheTTL:    cacheTTL,
		sections:    HomeSections,
	}
}

func (uc *HomeUseCase) Sections() []SectionConfig {
	return uc.sections
}

func sectionCacheKey(key string) string {
	return "home:section:" + key
}

// SectionProducts returns the promotion tiles for one section: a random
// four of the category's products, served from cache inside the TTL.
// A failed fetch degrades to the section's generated placeholders.
func (uc *HomeUseCase) SectionProducts(ctx context.Context, key string) ([]*entity.Product, error) {
	config, ok := uc.findSection(key)
	if !ok {
		return nil, errors.NotFound("Section", nil)
	}

	var cached []*entity.Product
	if err := uc.cache.Get(ctx, sectionCacheKey(key), &cached); err == nil {
		return cached, nil
	}

	products, _, err := uc.productRepo.ListByCategory(ctx, config.Category, nil, 0)
	if err != nil {
		logger.Warn("Section %s fetch failed, serving placeholders: %v", key, err)
		return fallbackProducts(config), nil
	}

	for _, product := range products {
		if product.Price == 0 {
			product.Price = config.DefaultPrice
		}
		if product.OriginalPrice == 0 {
			product.OriginalPrice = config.DefaultMRP
		}
	}

	rand.Shuffle(len(products), func(i, j int) {
		products[i], products[j] = products[j], products[i]
	})
	if len(products) > SectionSize {
		products = products[:SectionSize]
	}

	if err := uc.cache.Set(ctx, sectionCacheKey(key), products, uc.cacheTTL); err != nil {
		logger.Warn("Section %s cache store failed: %v", key, err)
	}

	return products, nil
}

// InvalidateSection drops a section's cached tiles, forcing the next
// request to refetch.
func (uc *HomeUseCase) InvalidateSection(ctx context.Context, key string) error {
	if _, ok := uc.findSection(key); !ok {
		return errors.NotFound("Section", nil)
	}
	return uc.cache.Invalidate(ctx, sectionCacheKey(key))
}

func (uc *HomeUseCase) findSection(key string) (SectionConfig, bool) {
	for _, config := range uc.sections {
		if config.Key == key {
			return config, true
		}
	}
	return SectionConfig{}, false
}

func fallbackProducts(config SectionConfig) []*entity.Product {
	products := make([]*entity.Product, SectionSize)
	for i := range products {
		products[i] = &entity.Product{
			ID:            fmt.Sprintf("%s-placeholder-%d", config.Key, i+1),
			Name:          config.FallbackName,
			Pattern:       config.FallbackName,
			Brand:         config.FallbackBrand,
			Category:      config.Category,
			Price:         config.DefaultPrice,
			OriginalPrice: config.DefaultMRP,
		}
	}
	return products
}
