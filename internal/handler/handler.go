package handlers

import (
	"estatehub/internal/config"
	"estatehub/internal/service"

	"github.com/go-playground/validator/v10"
)

type Handlers struct {
	AuthService       service.AuthService
	ProfileService    service.ProfileService
	PropertyService   service.PropertyService
	ModerationService service.ModerationService
	ListingService    service.ListingService
	AdminService      service.AdminService
	Cfg               *config.Config
	Validate          *validator.Validate
}

func NewHandlers(services *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:       services.Auth,
		ProfileService:    services.Profile,
		PropertyService:   services.Property,
		ModerationService: services.Moderation,
		ListingService:    services.Listing,
		AdminService:      services.Admin,
		Cfg:               config,
		Validate:          validator.New(),
	}
}
