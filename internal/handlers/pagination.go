package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

// pageParams reads page-number pagination from the query string. The page
// size defaults to PAGE_SIZE and is capped at PAGE_SIZE_MAX.
func pageParams(c *fiber.Ctx) (offset, limit int) {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit = c.QueryInt("limit", viper.GetInt("PAGE_SIZE"))
	if limit < 1 {
		limit = viper.GetInt("PAGE_SIZE")
	}
	if max := viper.GetInt("PAGE_SIZE_MAX"); limit > max {
		limit = max
	}
	return (page - 1) * limit, limit
}

// paginated writes the standard list envelope.
func paginated(c *fiber.Ctx, count int64, results interface{}) error {
	return c.JSON(fiber.Map{
		"count":   count,
		"results": results,
	})
}
