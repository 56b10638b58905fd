package handler

import (
	"net/http"

	"bookshop/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness only; it does not touch Postgres or Redis.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
