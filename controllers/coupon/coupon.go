package couponControllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/models"
)

type CreateCouponInput struct {
	Code       string    `json:"code" binding:"required"`
	PercentOff float64   `json:"percent_off" binding:"required,gt=0,lte=100"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type UpdateCouponInput struct {
	PercentOff *float64   `json:"percent_off"`
	ExpiresAt  *time.Time `json:"expires_at"`
	Active     *bool      `json:"active"`
}

// POST /admin/coupons
func CreateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateCouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		coupon := models.Coupon{
			Code:       strings.ToUpper(strings.TrimSpace(input.Code)),
			PercentOff: input.PercentOff,
			ExpiresAt:  input.ExpiresAt,
			Active:     true,
		}

		if err := db.Create(&coupon).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Coupon code already exists"})
			return
		}

		c.JSON(http.StatusCreated, coupon)
	}
}

// GET /admin/coupons
func GetAllCoupons(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupons []models.Coupon
		if err := db.Order("created_at desc").Find(&coupons).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coupons"})
			return
		}
		c.JSON(http.StatusOK, coupons)
	}
}

// PUT /admin/coupons/:code
func UpdateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := strings.ToUpper(c.Param("code"))

		var coupon models.Coupon
		if err := db.Where("code = ?", code).First(&coupon).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}

		var input UpdateCouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.PercentOff != nil {
			if *input.PercentOff <= 0 || *input.PercentOff > 100 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "percent_off must be in (0, 100]"})
				return
			}
			updates["percent_off"] = *input.PercentOff
		}
		if input.ExpiresAt != nil {
			updates["expires_at"] = *input.ExpiresAt
		}
		if input.Active != nil {
			updates["active"] = *input.Active
		}

		if len(updates) > 0 {
			if err := db.Model(&coupon).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coupon"})
				return
			}
		}

		c.JSON(http.StatusOK, coupon)
	}
}

// DELETE /admin/coupons/:code
func DeleteCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := strings.ToUpper(c.Param("code"))

		if err := db.Where("code = ?", code).Delete(&models.Coupon{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coupon"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted"})
	}
}

// ValidateCoupon answers GET /user/coupons/:code, the storefront's
// checkout preview for a code the shopper typed in.
func ValidateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := strings.ToUpper(c.Param("code"))

		var coupon models.Coupon
		if err := db.Where("code = ?", code).First(&coupon).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}

		if !coupon.Usable(time.Now()) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Coupon is expired or inactive"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"code":        coupon.Code,
			"percent_off": coupon.PercentOff,
			"expires_at":  coupon.ExpiresAt,
		})
	}
}
