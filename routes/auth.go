package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/auth"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.RouterGroup, deps Deps) {
	authGroup := r.Group("/auth")
	{
		// Regular user Google login (merges the guest snapshot on success)
		authGroup.POST("/google-user", auth.GoogleUserLoginHandler(deps.DB, deps.Sessions, deps.Local, deps.Remote))

		// Google Admin login
		authGroup.POST("/google-admin", auth.GoogleAdminLoginHandler(deps.DB, deps.Sessions, deps.Local, deps.Remote))

		// Anonymous shopping identity
		authGroup.POST("/guest", auth.CreateGuestUser(deps.DB))
	}
}
