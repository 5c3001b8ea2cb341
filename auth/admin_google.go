package auth

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/models"
	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/persistence"
	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/state"
)

// GoogleAdminLoginHandler handles admin login via Google OAuth2.
//
// Admin accounts carry no shopping state: a successful admin login discards
// any guest snapshots and resets the account snapshots instead of merging.
func GoogleAdminLoginHandler(db *gorm.DB, sessions *state.Manager, guest, account persistence.Adapter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			IDToken string `json:"idToken" binding:"required"`
			GuestID string `json:"guest_id"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		ctx := c.Request.Context()

		token, ok := verifyIDToken(ctx, req.IDToken)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or revoked ID token"})
			return
		}

		email, emailOK := token.Claims["email"].(string)
		if !emailOK || email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email not found in token"})
			return
		}
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)
		firebaseUserID := token.UID

		resetShoppingState := func() {
			persistence.MergeOnLogin(ctx, guest, account, req.GuestID, firebaseUserID, "admin")
			if req.GuestID != "" {
				sessions.Invalidate(req.GuestID)
			}
			sessions.Invalidate(firebaseUserID)
		}

		superAdminEmail := os.Getenv("SUPER_ADMIN_EMAIL")

		// Super admin shortcut
		if superAdminEmail != "" && email == superAdminEmail {
			resetShoppingState()
			respondAdmin(c, email, "superadmin", firebaseUserID, name, picture)
			return
		}

		// Regular admin flow
		var admin models.Admin
		err := db.Where("email = ?", email).First(&admin).Error
		if err == gorm.ErrRecordNotFound {
			// Create pending admin
			admin = models.Admin{
				Email:    email,
				Name:     name,
				Picture:  picture,
				Approved: false,
			}
			if err := db.Create(&admin).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register admin"})
				return
			}
			c.JSON(http.StatusForbidden, gin.H{"error": "Pending approval by super admin"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		// Update profile if changed
		if err := db.Model(&admin).Updates(models.Admin{Name: name, Picture: picture}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update admin info"})
			return
		}

		// Reload to get the latest Approved flag
		if err := db.First(&admin, admin.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		if !admin.Approved {
			c.JSON(http.StatusForbidden, gin.H{"error": "Pending approval by super admin"})
			return
		}

		resetShoppingState()
		respondAdmin(c, email, "admin", firebaseUserID, name, picture)
	}
}

func respondAdmin(c *gin.Context, email, role, userID, name, picture string) {
	c.JSON(http.StatusOK, gin.H{
		"token":   issueJWT(email, role, userID, name, picture),
		"role":    role,
		"email":   email,
		"name":    name,
		"picture": picture,
	})
}
