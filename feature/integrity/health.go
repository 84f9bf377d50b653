package integrity

import "github.com/gofiber/fiber/v2"

// HealthResponse is the body of the liveness endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HealthHandler returns the liveness handler. It touches no dependency, so it
// answers even when storage or the database is down.
// @Summary Health
// @Description Liveness probe.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Healthy"
// @Router /health [get]
func HealthHandler(service string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(HealthResponse{Status: "healthy", Service: service})
	}
}
