package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/models"
	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/persistence"
	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/state"
)

// ---------------------------------------------
// GOOGLE USER LOGIN
// ---------------------------------------------
//
// Verifies the Firebase ID token, upserts the user row, then reconciles
// guest-session shopping state with the account: the guest snapshots are
// merged into the account's remote snapshots and deleted. Sessions touched
// by the merge are invalidated so the next request re-hydrates.
func GoogleUserLoginHandler(db *gorm.DB, sessions *state.Manager, guest, account persistence.Adapter) gin.HandlerFunc {
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
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Firebase ID token"})
			return
		}

		// Extract user info
		email, _ := token.Claims["email"].(string)
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)
		firebaseUserID := token.UID

		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email not found in token"})
			return
		}

		// ---------------------------------------------
		// 1️⃣ Fetch or Create user
		// ---------------------------------------------
		var user models.User
		err := db.Where("id = ?", firebaseUserID).First(&user).Error

		if err == gorm.ErrRecordNotFound {
			user = models.User{
				ID:       firebaseUserID,
				Email:    email,
				Name:     name,
				Picture:  picture,
				Provider: "google",
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
		} else if err == nil {
			db.Model(&user).Updates(models.User{Name: name, Picture: picture})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		// ---------------------------------------------
		// 2️⃣ Merge guest shopping state into the account
		// ---------------------------------------------
		mergeStatus := persistence.MergeOnLogin(ctx, guest, account, req.GuestID, user.ID, "user")
		if req.GuestID != "" {
			sessions.Invalidate(req.GuestID)
		}
		sessions.Invalidate(user.ID)

		// ---------------------------------------------
		// 3️⃣ Create auth response
		// ---------------------------------------------
		c.JSON(http.StatusOK, gin.H{
			"message":      "Login successful",
			"merge_status": mergeStatus,
			"user":         user,
			"firebase_id":  firebaseUserID,
			"token":        issueJWT(email, "user", firebaseUserID, name, picture),
		})
	}
}
