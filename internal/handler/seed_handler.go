package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "festivo/internal/errors"
	"festivo/internal/model"
	"festivo/internal/service"
)

// SeedHandler populates the running store with demo providers so the
// marketplace is browsable with the default in-memory driver.
type SeedHandler struct {
	userService     service.UserService
	businessService service.BusinessService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(userService service.UserService, businessService service.BusinessService) *SeedHandler {
	return &SeedHandler{userService: userService, businessService: businessService}
}

// SeedDemoResponse represents the seed response.
type SeedDemoResponse struct {
	Message    string `json:"message"`
	Users      int    `json:"users"`
	Businesses int    `json:"businesses"`
}

type demoProvider struct {
	user     model.User
	business model.Business
}

func demoProviders() []demoProvider {
	return []demoProvider{
		{
			user: model.User{
				Email:    "sofia@lenslight.example",
				Username: "sofialens",
				Password: "demo-password",
				FullName: "Sofia Marquez",
				UserType: model.UserTypeProvider,
			},
			business: model.Business{
				Name:         "Lens & Light Photography",
				Description:  "Wedding and event photography with a documentary style.",
				Category:     "Photography",
				Location:     "Austin, TX",
				ContactEmail: "bookings@lenslight.example",
				ContactPhone: "+1 512 555 0101",
				Portfolio:    []string{"https://cdn.festivo.example/lenslight/1.jpg", "https://cdn.festivo.example/lenslight/2.jpg"},
				Pricing:      "Packages from $1,200",
				Rating:       5,
			},
		},
		{
			user: model.User{
				Email:    "marco@fornoamico.example",
				Username: "fornoamico",
				Password: "demo-password",
				FullName: "Marco Bellini",
				UserType: model.UserTypeProvider,
			},
			business: model.Business{
				Name:         "Forno Amico Catering",
				Description:  "Wood-fired Italian catering for parties of 20 to 200.",
				Category:     "Catering",
				Location:     "Austin, TX",
				ContactEmail: "events@fornoamico.example",
				Pricing:      "From $35 per head",
				Rating:       4,
			},
		},
		{
			user: model.User{
				Email:    "dana@thegreenbarn.example",
				Username: "greenbarn",
				Password: "demo-password",
				FullName: "Dana Whitfield",
				UserType: model.UserTypeProvider,
			},
			business: model.Business{
				Name:         "The Green Barn",
				Description:  "Restored barn venue with garden grounds for up to 150 guests.",
				Category:     "Venue",
				Location:     "Dripping Springs, TX",
				ContactEmail: "hello@thegreenbarn.example",
				ContactPhone: "+1 512 555 0145",
				Pricing:      "Weekend hire from $3,000",
				Rating:       5,
			},
		},
	}
}

// SeedDemo godoc
// @Summary Seed demo providers and businesses
// @Tags seed
// @Produce json
// @Success 200 {object} SeedDemoResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed/demo [get]
func (h *SeedHandler) SeedDemo(c echo.Context) error {
	ctx := c.Request().Context()
	usersCreated := 0
	businessesCreated := 0

	for _, p := range demoProviders() {
		user := p.user
		created, err := h.userService.Register(ctx, &user)
		if err != nil {
			// Repeat calls hit the uniqueness checks; skip already-seeded rows.
			if stderrors.Is(err, apperrors.ErrEmailTaken) || stderrors.Is(err, apperrors.ErrUsernameTaken) {
				continue
			}
			httpErr := apperrors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		usersCreated++

		business := p.business
		business.UserID = created.ID
		if _, err := h.businessService.CreateBusiness(ctx, &business); err != nil {
			httpErr := apperrors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		businessesCreated++
	}

	return c.JSON(http.StatusOK, SeedDemoResponse{
		Message:    "demo data seeded",
		Users:      usersCreated,
		Businesses: businessesCreated,
	})
}
