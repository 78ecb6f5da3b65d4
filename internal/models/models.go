package models

import (
	"time"

	"github.com/lib/pq"
)

// Profile roles. Admin is the only role with moderation authority.
const (
	RoleOwner  = "owner"
	RoleRenter = "renter"
	RoleBroker = "broker"
	RoleAdmin  = "admin"
)

// Property moderation states.
const (
	StatusPending   = "pending"
	StatusPublished = "published"
	StatusRejected  = "rejected"
)

// Listing types.
const (
	TypeRent = "rent"
	TypeSell = "sell"
)

// Principal is the authenticated identity making a request, extracted from
// the access token. Services receive it explicitly instead of reading
// ambient session state.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin is the sole privilege predicate in the system. Safe on nil.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

type Profile struct {
	ID                     string    `json:"id" db:"id"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	FullName               string    `json:"fullName" db:"full_name"`
	Phone                  string    `json:"phone" db:"phone"`
	Whatsapp               string    `json:"whatsapp" db:"whatsapp"`
	Role                   string    `json:"role" db:"role"`
	AvatarURL              string    `json:"avatarUrl" db:"avatar_url"`
	IsVerified             bool      `json:"isVerified" db:"is_verified"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
	CreatedAt              time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt              time.Time `json:"updatedAt" db:"updated_at"`
}

type Property struct {
	ID            string         `json:"id" db:"id"`
	OwnerID       string         `json:"ownerId" db:"owner_id"`
	Title         string         `json:"title" db:"title"`
	Description   string         `json:"description" db:"description"`
	Price         float64        `json:"price" db:"price"`
	Type          string         `json:"type" db:"type"`
	Location      string         `json:"location" db:"location"`
	Emirate       string         `json:"emirate" db:"emirate"`
	Community     string         `json:"community" db:"community"`
	Bedrooms      int            `json:"bedrooms" db:"bedrooms"`
	Bathrooms     int            `json:"bathrooms" db:"bathrooms"`
	Area          float64        `json:"area" db:"area"`
	Parking       int            `json:"parking" db:"parking"`
	PropertyType  string         `json:"propertyType" db:"property_type"`
	YearBuilt     int            `json:"yearBuilt" db:"year_built"`
	AvailableFrom string         `json:"availableFrom" db:"available_from"`
	Furnished     string         `json:"furnished" db:"furnished"`
	Amenities     pq.StringArray `json:"amenities" db:"amenities"`
	Images        pq.StringArray `json:"images" db:"images"`
	IDDocument    string         `json:"idDocument" db:"id_document"`
	OwnershipDoc  string         `json:"ownershipDocument" db:"ownership_document"`
	Status        string         `json:"status" db:"status"`
	// IsPublished is generated by the database from status; it is never
	// written by application code.
	IsPublished bool      `json:"isPublished" db:"is_published"`
	IsSold      bool      `json:"isSold" db:"is_sold"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// OwnerProfile is the public slice of a profile joined onto a property read.
type OwnerProfile struct {
	FullName   string `json:"fullName" db:"owner_full_name"`
	AvatarURL  string `json:"avatarUrl" db:"owner_avatar_url"`
	Phone      string `json:"phone" db:"owner_phone"`
	Whatsapp   string `json:"whatsapp" db:"owner_whatsapp"`
	IsVerified bool   `json:"isVerified" db:"owner_is_verified"`
	Role       string `json:"role" db:"owner_role"`
}

// Document is a verification document attached to a property.
type Document struct {
	Kind string `json:"kind"`
	URL  string `json:"url"`
}

// PropertyWithOwner is the detail-page shape: the property, the owner's
// public profile and the non-empty verification documents.
type PropertyWithOwner struct {
	Property
	Owner     OwnerProfile `json:"owner"`
	Documents []Document   `json:"documents" db:"-"`
}

// DocumentList derives the document list from the two URL fields, each
// included only when non-empty.
func (p *Property) DocumentList() []Document {
	docs := make([]Document, 0, 2)
	if p.IDDocument != "" {
		docs = append(docs, Document{Kind: "id", URL: p.IDDocument})
	}
	if p.OwnershipDoc != "" {
		docs = append(docs, Document{Kind: "ownership", URL: p.OwnershipDoc})
	}
	return docs
}

// AdminPropertyRow is a moderation-console row: property plus owner name.
type AdminPropertyRow struct {
	Property
	OwnerName string `json:"ownerName" db:"owner_full_name"`
}
