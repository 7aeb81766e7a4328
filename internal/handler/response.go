package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DetailResponse is the fixed envelope for status and error bodies.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// Message sends a {"detail": ...} body with the given status.
func Message(c echo.Context, status int, detail string) error {
	if status == 0 {
		status = http.StatusOK
	}
	return c.JSON(status, DetailResponse{Detail: detail})
}
