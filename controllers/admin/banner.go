package adminController

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/models"
)

const bannerPublicPath = "/uploads/banners"

func bannerUploadDir() string {
	root := os.Getenv("UPLOADS_DIR")
	if root == "" {
		root = "/var/www/apex/uploads"
	}
	return filepath.Join(root, "banners")
}

// UploadBanner saves the image locally and stores its public URL in the DB.
func UploadBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, fileHeader, err := c.Request.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
			return
		}
		defer file.Close()

		if err := os.MkdirAll(bannerUploadDir(), os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		origName := fileHeader.Filename
		ext := filepath.Ext(origName)
		baseName := strings.TrimSuffix(origName, ext)

		// Remove duplicate extensions like ".jpg.jpg"
		for {
			e := filepath.Ext(baseName)
			if e != "" && (e == ".jpg" || e == ".jpeg" || e == ".png" || e == ".gif") {
				baseName = strings.TrimSuffix(baseName, e)
			} else {
				break
			}
		}

		baseName = strings.ReplaceAll(baseName, " ", "_")

		newFileName := fmt.Sprintf("%d_%s%s", time.Now().Unix(), baseName, ext)
		savePath := filepath.Join(bannerUploadDir(), newFileName)

		if err := c.SaveUploadedFile(fileHeader, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}

		banner := models.Banner{ImageURL: fmt.Sprintf("%s/%s", bannerPublicPath, newFileName)}
		if err := db.Create(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB save failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Banner uploaded", "data": banner})
	}
}

// GetBanners - List banners
func GetBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.Banner
		if err := db.Find(&banners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get banners"})
			return
		}
		c.JSON(http.StatusOK, banners)
	}
}

// DeleteBanner - Delete both DB record & local file
func DeleteBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var banner models.Banner

		if err := db.First(&banner, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if banner.ImageURL != "" {
			localPath := filepath.Join(bannerUploadDir(), filepath.Base(banner.ImageURL))
			if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
				return
			}
		}

		if err := db.Delete(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete from database"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
	}
}
