package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"estatehub/internal/models"
	"estatehub/internal/repository"
	"estatehub/internal/storage"
)

type CreatePropertyRequest struct {
	Title         string          `json:"title" validate:"required"`
	Description   string          `json:"description"`
	Price         float64         `json:"price" validate:"required,gt=0"`
	Type          string          `json:"type" validate:"required,oneof=rent sell"`
	Location      string          `json:"location" validate:"required"`
	Emirate       string          `json:"emirate"`
	Community     string          `json:"community"`
	Bedrooms      int             `json:"bedrooms"`
	Bathrooms     int             `json:"bathrooms"`
	Area          float64         `json:"area"`
	Parking       int             `json:"parking"`
	PropertyType  string          `json:"propertyType" validate:"required,oneof=Apartment Villa House Penthouse Office Commercial"`
	YearBuilt     int             `json:"yearBuilt"`
	AvailableFrom string          `json:"availableFrom"`
	Furnished     string          `json:"furnished" validate:"omitempty,oneof='Fully Furnished' 'Semi Furnished' Unfurnished"`
	Amenities     json.RawMessage `json:"amenities"`
	Images        json.RawMessage `json:"images"`
	IDDocument    string          `json:"idDocument"`
	OwnershipDoc  string          `json:"ownershipDocument"`
}

type UpdatePropertyRequest struct {
	Title         string          `json:"title" validate:"required"`
	Description   string          `json:"description"`
	Price         float64         `json:"price" validate:"required,gt=0"`
	Type          string          `json:"type" validate:"required,oneof=rent sell"`
	Location      string          `json:"location" validate:"required"`
	Emirate       string          `json:"emirate"`
	Community     string          `json:"community"`
	Bedrooms      int             `json:"bedrooms"`
	Bathrooms     int             `json:"bathrooms"`
	Area          float64         `json:"area"`
	Parking       int             `json:"parking"`
	PropertyType  string          `json:"propertyType" validate:"required,oneof=Apartment Villa House Penthouse Office Commercial"`
	YearBuilt     int             `json:"yearBuilt"`
	AvailableFrom string          `json:"availableFrom"`
	Furnished     string          `json:"furnished" validate:"omitempty,oneof='Fully Furnished' 'Semi Furnished' Unfurnished"`
	Amenities     json.RawMessage `json:"amenities"`
	Images        json.RawMessage `json:"images"`
}

// UploadFile is one file of a batch image upload.
type UploadFile struct {
	Name string
	Body io.Reader
	Size int64
}

type PropertyService interface {
	Create(ctx context.Context, principal *models.Principal, req CreatePropertyRequest) (*models.Property, error)
	Update(ctx context.Context, principal *models.Principal, propertyID string, req UpdatePropertyRequest) (*models.Property, error)
	Delete(ctx context.Context, principal *models.Principal, propertyID string) error
	GetByID(ctx context.Context, propertyID string) (*models.PropertyWithOwner, error)
	ListByOwner(ctx context.Context, principal *models.Principal) ([]models.Property, error)
	UploadImages(ctx context.Context, principal *models.Principal, files []UploadFile) ([]string, int, error)
	UploadDocument(ctx context.Context, principal *models.Principal, kind, fileName string, file io.Reader, size int64) (string, error)
}

type propertyService struct {
	propertyRepo repository.PropertyRepository
	storage      storage.Storage
	cache        Cache
}

func NewPropertyService(propertyRepo repository.PropertyRepository, storage storage.Storage, cache Cache) PropertyService {
	return &propertyService{
		propertyRepo: propertyRepo,
		storage:      storage,
		cache:        cache,
	}
}

// Create persists a new listing for the principal. Every property enters
// moderation as pending; the publish decision belongs to an admin. The
// caller must already hold at least one image URL and both verification
// document URLs.
func (p *propertyService) Create(ctx context.Context, principal *models.Principal, req CreatePropertyRequest) (*models.Property, error) {
	if principal == nil {
		return nil, ErrUnauthorized
	}

	amenities, _ := ParseStringList(req.Amenities)
	images, ok := ParseStringList(req.Images)
	if !ok || len(images) == 0 {
		return nil, fmt.Errorf("at least one property image is required")
	}
	if req.IDDocument == "" || req.OwnershipDoc == "" {
		return nil, fmt.Errorf("both ID and ownership documents are required")
	}

	property := &models.Property{
		OwnerID:       principal.ID,
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		Type:          req.Type,
		Location:      req.Location,
		Emirate:       req.Emirate,
		Community:     req.Community,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		Area:          req.Area,
		Parking:       req.Parking,
		PropertyType:  req.PropertyType,
		YearBuilt:     req.YearBuilt,
		AvailableFrom: req.AvailableFrom,
		Furnished:     defaultFurnished(req.Furnished),
		Amenities:     amenities,
		Images:        images,
		IDDocument:    req.IDDocument,
		OwnershipDoc:  req.OwnershipDoc,
	}

	if err := p.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	p.invalidateListings(ctx)

	return property, nil
}

// Update rewrites the content fields of an owned listing. The ownership
// predicate lives in the repository WHERE clause; a failure here does not
// distinguish "missing" from "not yours".
func (p *propertyService) Update(ctx context.Context, principal *models.Principal, propertyID string, req UpdatePropertyRequest) (*models.Property, error) {
	if principal == nil {
		return nil, ErrUnauthorized
	}

	amenities, _ := ParseStringList(req.Amenities)
	images, _ := ParseStringList(req.Images)

	property := &models.Property{
		ID:            propertyID,
		OwnerID:       principal.ID,
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		Type:          req.Type,
		Location:      req.Location,
		Emirate:       req.Emirate,
		Community:     req.Community,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		Area:          req.Area,
		Parking:       req.Parking,
		PropertyType:  req.PropertyType,
		YearBuilt:     req.YearBuilt,
		AvailableFrom: req.AvailableFrom,
		Furnished:     defaultFurnished(req.Furnished),
		Amenities:     amenities,
		Images:        images,
	}

	if err := p.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}

	p.invalidateListings(ctx)

	updated, err := p.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	return &updated.Property, nil
}

func (p *propertyService) Delete(ctx context.Context, principal *models.Principal, propertyID string) error {
	if principal == nil {
		return ErrUnauthorized
	}

	if err := p.propertyRepo.Delete(ctx, propertyID, principal.ID); err != nil {
		return err
	}

	p.invalidateListings(ctx)

	return nil
}

func (p *propertyService) GetByID(ctx context.Context, propertyID string) (*models.PropertyWithOwner, error) {
	return p.propertyRepo.GetByID(ctx, propertyID)
}

func (p *propertyService) ListByOwner(ctx context.Context, principal *models.Principal) ([]models.Property, error) {
	if principal == nil {
		return nil, ErrUnauthorized
	}

	return p.propertyRepo.ListByOwner(ctx, principal.ID)
}

// UploadImages runs the batch as independent uploads. On failure the URLs
// uploaded so far are returned along with the index of the first failure;
// nothing is rolled back, the caller chooses to keep or retry.
func (p *propertyService) UploadImages(ctx context.Context, principal *models.Principal, files []UploadFile) ([]string, int, error) {
	if principal == nil {
		return nil, -1, ErrUnauthorized
	}

	urls := make([]string, 0, len(files))
	for i, f := range files {
		url, err := p.storage.UploadPropertyImage(ctx, principal.ID, f.Name, f.Body, f.Size)
		if err != nil {
			return urls, i, fmt.Errorf("failed to upload image %q: %w", f.Name, err)
		}
		urls = append(urls, url)
	}

	return urls, -1, nil
}

func (p *propertyService) UploadDocument(ctx context.Context, principal *models.Principal, kind, fileName string, file io.Reader, size int64) (string, error) {
	if principal == nil {
		return "", ErrUnauthorized
	}

	if kind != "id" && kind != "ownership" {
		return "", fmt.Errorf("unknown document kind %q", kind)
	}

	return p.storage.UploadDocument(ctx, principal.ID, kind, fileName, file, size)
}

// Cache invalidation is the refresh signal to the rendering layer; a Redis
// hiccup must not fail the mutation that already committed.
func (p *propertyService) invalidateListings(ctx context.Context) {
	if err := p.cache.Invalidate(ctx); err != nil {
		log.Printf("Warning: failed to invalidate listing cache: %v", err)
	}
}

func defaultFurnished(furnished string) string {
	if furnished == "" {
		return "Unfurnished"
	}
	return furnished
}
