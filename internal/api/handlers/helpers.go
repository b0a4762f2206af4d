package handlers

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/pkg/snapshot"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func sessionCache(c *fiber.Ctx) *snapshot.Cache {
	cache, _ := c.Locals("session").(*snapshot.Cache)
	return cache
}

func foodIDParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, domain.ErrInvalidFoodID
	}
	return uint(id), nil
}

// queryValues collects a repeatable query parameter; each occurrence may
// also hold a comma separated list.
func queryValues(c *fiber.Ctx, key string) []string {
	var values []string
	for _, raw := range c.Context().QueryArgs().PeekMulti(key) {
		for _, v := range strings.Split(string(raw), ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}
