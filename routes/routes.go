package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/mail"
	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/persistence"
	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/state"
)

// Deps carries everything the route groups need beyond the DB handle.
type Deps struct {
	DB       *gorm.DB
	Sessions *state.Manager
	Local    persistence.Adapter
	Remote   persistence.Adapter
	Mailer   *mail.Client
}

// SetupRoutes is the single entry‐point that wires up Auth, Guest, User, and
// Admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	api := r.Group("/api/v1")

	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(api, deps)

	// 2️⃣ Guest routes (guest JWT)
	SetupGuestRoutes(api, deps)

	// 3️⃣ User routes (JWT‐protected)
	SetupUserRoutes(api, deps)

	// 4️⃣ Admin routes (API‐Key‐protected)
	SetupAdminRoutes(api, deps)

	// order routes
	SetupOrderRoutes(api, deps)
}
