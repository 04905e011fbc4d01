package routes

import (
	"net/http"
	"time"

	"lawlink/handlers"
	"lawlink/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handler sets the router needs. Each profile role
// gets its own typed handler trio.
type HandlerBundle struct {
	Auth       *handlers.AuthHandler
	Lawyers    *handlers.RoleHandlers[models.LawyerProfile, *models.LawyerProfile]
	LawFirms   *handlers.RoleHandlers[models.LawFirmProfile, *models.LawFirmProfile]
	Paralegals *handlers.RoleHandlers[models.ParalegalProfile, *models.ParalegalProfile]
	Mediators  *handlers.RoleHandlers[models.MediatorProfile, *models.MediatorProfile]
	Clients    *handlers.RoleHandlers[models.ClientProfile, *models.ClientProfile]
	Corporates *handlers.RoleHandlers[models.CorporateProfile, *models.CorporateProfile]
}

// registerRoleRoutes wires the signup/getprofile/updateprofile trio for one
// role variant.
func registerRoleRoutes[T any, PT models.ProfilePtr[T]](api *gin.RouterGroup, h *handlers.RoleHandlers[T, PT]) {
	role := h.Reg.Role
	api.POST("/signup/"+role.SignupSegment(), h.SignupHandler)
	api.GET("/"+role.PathSegment()+"/getprofile/:userId", h.GetProfileHandler)
	api.PUT("/"+role.PathSegment()+"/updateprofile/:userId", h.UpdateProfileHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm LawLink"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)

	api := r.Group("/api/users")
	{
		api.POST("/login", hb.Auth.LoginHandler)
		api.POST("/google-auth", hb.Auth.GoogleAuthHandler)

		registerRoleRoutes(api, hb.Lawyers)
		registerRoleRoutes(api, hb.LawFirms)
		registerRoleRoutes(api, hb.Paralegals)
		registerRoleRoutes(api, hb.Mediators)
		registerRoleRoutes(api, hb.Clients)
		registerRoleRoutes(api, hb.Corporates)
	}
}
