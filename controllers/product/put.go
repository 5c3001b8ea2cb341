package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/models"
)

// UpdateProduct updates fields that were supplied; untouched fields keep
// their current values. Accepts the same multipart form as CreateProduct.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var product models.Product
		if err := db.Preload("Categories").First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("sale_price"); v != "" {
			if sp, err := strconv.ParseFloat(v, 64); err == nil {
				product.SalePrice = sp
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale_price"})
				return
			}
		}
		if v := c.PostForm("regular_price"); v != "" {
			if rp, err := strconv.ParseFloat(v, 64); err == nil {
				product.RegularPrice = rp
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid regular_price"})
				return
			}
		}
		if v := c.PostForm("base_cost"); v != "" {
			if bc, err := strconv.ParseFloat(v, 64); err == nil {
				product.BaseCost = bc
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid base_cost"})
				return
			}
		}
		if v := c.PostForm("weight"); v != "" {
			if w, err := strconv.ParseFloat(v, 64); err == nil {
				product.Weight = w
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weight"})
				return
			}
		}
		if v := c.PostForm("stock"); v != "" {
			if s, err := strconv.Atoi(v); err == nil {
				product.Stock = s
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}
		if v := c.PostForm("sizes"); v != "" {
			sizes, err := models.ParseStringList(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sizes: " + err.Error()})
				return
			}
			product.Sizes = sizes
		}
		if v := c.PostForm("colors"); v != "" {
			colors, err := models.ParseStringList(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid colors: " + err.Error()})
				return
			}
			product.Colors = colors
		}

		// Category replacement
		if v := c.PostForm("category_ids"); v != "" {
			var parsedIDs []uint
			for _, tok := range strings.Split(v, ",") {
				tok = strings.TrimSpace(tok)
				if tok == "" {
					continue
				}
				if id64, err := strconv.ParseUint(tok, 10, 64); err == nil {
					parsedIDs = append(parsedIDs, uint(id64))
				} else {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_ids format"})
					return
				}
			}
			var categories []models.Category
			if len(parsedIDs) > 0 {
				if err := db.Where("id IN ?", parsedIDs).Find(&categories).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
					return
				}
			}
			if err := db.Model(&product).Association("Categories").Replace(categories); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update categories"})
				return
			}
		}

		// Image replacement
		if file, err := c.FormFile("image"); err == nil {
			saveDir := filepath.Join(uploadsRoot(), "products")
			if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
				return
			}

			// Delete old image if it exists
			if product.Image != "" {
				oldPath := filepath.Join(saveDir, filepath.Base(product.Image))
				_ = os.Remove(oldPath)
			}

			filename := strings.ReplaceAll(file.Filename, " ", "_")
			savePath := filepath.Join(saveDir, filename)
			if err := c.SaveUploadedFile(file, savePath); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			product.Image = fmt.Sprintf("/uploads/products/%s", filename)
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
