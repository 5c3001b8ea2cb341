package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/models"
)

// Expected columns:
// ID | Name | Description | SalePrice | RegularPrice | BaseCost | Weight |
// Stock | Image | Sizes | Colors | CategoryIDs
const importColumns = 12

func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]
			if len(row.Cells) < importColumns {
				skippedCount++
				continue
			}

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			description := get(2)
			salePrice, err1 := strconv.ParseFloat(get(3), 64)
			regularPrice, _ := strconv.ParseFloat(get(4), 64)
			baseCost, _ := strconv.ParseFloat(get(5), 64)
			weight, err2 := strconv.ParseFloat(get(6), 64)
			stock, _ := strconv.ParseFloat(get(7), 64)
			image := get(8)
			sizes, err3 := models.ParseStringList(get(9))
			colors, err4 := models.ParseStringList(get(10))
			categoryIDStr := get(11)

			if name == "" || err1 != nil || err2 != nil || err3 != nil || err4 != nil {
				skippedCount++
				continue
			}

			var categories []models.Category
			for _, part := range strings.Split(categoryIDStr, ",") {
				if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
					categories = append(categories, models.Category{ID: uint(id)})
				}
			}

			product := models.Product{
				Name:         name,
				Description:  description,
				SalePrice:    salePrice,
				RegularPrice: regularPrice,
				BaseCost:     baseCost,
				Weight:       weight,
				Stock:        int(stock),
				Image:        image,
				Sizes:        sizes,
				Colors:       colors,
				Categories:   categories,
			}

			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					var existing models.Product
					if err := db.Preload("Categories").First(&existing, id).Error; err == nil {
						existing.Name = product.Name
						existing.Description = product.Description
						existing.SalePrice = product.SalePrice
						existing.RegularPrice = product.RegularPrice
						existing.BaseCost = product.BaseCost
						existing.Weight = product.Weight
						existing.Stock = product.Stock
						existing.Image = product.Image
						existing.Sizes = product.Sizes
						existing.Colors = product.Colors

						// Replace categories
						if err := db.Model(&existing).Association("Categories").Replace(categories); err != nil {
							skippedCount++
							continue
						}

						if err := db.Save(&existing).Error; err == nil {
							updatedCount++
							continue
						}
					}
				}
			}

			// Insert new product
			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
