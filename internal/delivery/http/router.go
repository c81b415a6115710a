package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"legalclub/internal/delivery/http/controllers"
	"legalclub/internal/delivery/http/middleware"
	"legalclub/internal/domain"
)

// Controllers bundles the controllers wired into the router.
type Controllers struct {
	Auth         *controllers.AuthController
	Event        *controllers.EventController
	Registration *controllers.RegistrationController
	Content      *controllers.ContentController
	Contact      *controllers.ContactController
}

// NewRouter initializes the HTTP router with all application routes.
// Reads of public content need no token, member routes need a valid Bearer
// token, and admin routes additionally need the ADMIN role claim.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	auth := middleware.RequireAuth(verifier, logger)
	admin := middleware.RequireAdmin(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/signup", c.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", c.Auth.Login)
	mux.HandleFunc("GET /auth/me", auth(c.Auth.Me))

	// Events
	mux.HandleFunc("GET /events", c.Event.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", c.Event.GetEventByID)
	mux.HandleFunc("POST /events", admin(c.Event.CreateEvent))
	mux.HandleFunc("PUT /events/{eventID}", admin(c.Event.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", admin(c.Event.DeleteEvent))

	// Team registrations
	mux.HandleFunc("POST /registrations", auth(c.Registration.RegisterTeam))
	mux.HandleFunc("GET /registrations", admin(c.Registration.ListRegistrations))
	mux.HandleFunc("PATCH /registrations/{registrationID}/rating", admin(c.Registration.SetRating))
	mux.HandleFunc("PATCH /registrations/{registrationID}/decision", admin(c.Registration.Decide))

	// Resources
	mux.HandleFunc("GET /resources", c.Content.ListResources)
	mux.HandleFunc("POST /resources", admin(c.Content.CreateResource))
	mux.HandleFunc("PUT /resources/{resourceID}", admin(c.Content.UpdateResource))
	mux.HandleFunc("DELETE /resources/{resourceID}", admin(c.Content.DeleteResource))

	// Videos
	mux.HandleFunc("GET /videos", c.Content.ListVideos)
	mux.HandleFunc("POST /videos", admin(c.Content.CreateVideo))
	mux.HandleFunc("PUT /videos/{videoID}", admin(c.Content.UpdateVideo))
	mux.HandleFunc("DELETE /videos/{videoID}", admin(c.Content.DeleteVideo))

	// Reports
	mux.HandleFunc("GET /reports", c.Content.ListReports)
	mux.HandleFunc("POST /reports", admin(c.Content.CreateReport))
	mux.HandleFunc("PUT /reports/{reportID}", admin(c.Content.UpdateReport))
	mux.HandleFunc("DELETE /reports/{reportID}", admin(c.Content.DeleteReport))

	// Partners
	mux.HandleFunc("GET /partners", c.Content.ListPartners)
	mux.HandleFunc("POST /partners", admin(c.Content.CreatePartner))
	mux.HandleFunc("PUT /partners/{partnerID}", admin(c.Content.UpdatePartner))
	mux.HandleFunc("DELETE /partners/{partnerID}", admin(c.Content.DeletePartner))

	// Club members
	mux.HandleFunc("GET /club-members", c.Content.ListClubMembers)
	mux.HandleFunc("POST /club-members", admin(c.Content.CreateClubMember))
	mux.HandleFunc("PUT /club-members/{memberID}", admin(c.Content.UpdateClubMember))
	mux.HandleFunc("DELETE /club-members/{memberID}", admin(c.Content.DeleteClubMember))

	// Contact form
	mux.HandleFunc("POST /contact", c.Contact.SubmitMessage)
	mux.HandleFunc("GET /contact", admin(c.Contact.ListMessages))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
