package service

import (
	"context"
	"log"
	"strconv"

	"estatehub/internal/cache"
	"estatehub/internal/models"
	"estatehub/internal/repository"
)

// ListingService backs the public browse experience. It only ever sees
// published listings: the repository layers the visibility predicate under
// every caller-supplied criterion. Results come back newest-first and
// unpaginated; windowing happens at the HTTP layer.
type ListingService interface {
	Search(ctx context.Context, criteria repository.SearchCriteria) ([]models.Property, error)
}

type listingService struct {
	propertyRepo repository.PropertyRepository
	cache        Cache
}

func NewListingService(propertyRepo repository.PropertyRepository, cache Cache) ListingService {
	return &listingService{
		propertyRepo: propertyRepo,
		cache:        cache,
	}
}

func (l *listingService) Search(ctx context.Context, criteria repository.SearchCriteria) ([]models.Property, error) {
	key := searchCacheKey(criteria)

	var cached []models.Property
	hit, err := l.cache.Get(ctx, key, &cached)
	if err != nil {
		// Cache trouble degrades to a direct read.
		log.Printf("Warning: listing cache read failed: %v", err)
	} else if hit {
		return cached, nil
	}

	properties, err := l.propertyRepo.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}

	if err := l.cache.Set(ctx, key, properties); err != nil {
		log.Printf("Warning: listing cache write failed: %v", err)
	}

	return properties, nil
}

// searchCacheKey normalizes criteria into the cache key: zero values carry
// no constraint, so they are excluded and equivalent searches share a key.
func searchCacheKey(c repository.SearchCriteria) string {
	params := map[string]string{
		"emirate":       c.Emirate,
		"community":     c.Community,
		"type":          c.Type,
		"property_type": c.PropertyType,
		"min_price":     positiveFloat(c.MinPrice),
		"max_price":     positiveFloat(c.MaxPrice),
		"bedrooms":      positiveInt(c.Bedrooms),
		"bathrooms":     positiveInt(c.Bathrooms),
		"min_area":      positiveFloat(c.MinArea),
		"max_area":      positiveFloat(c.MaxArea),
	}
	return cache.SearchKey(params)
}

func positiveFloat(v float64) string {
	if v <= 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func positiveInt(v int) string {
	if v <= 0 {
		return ""
	}
	return strconv.Itoa(v)
}
