package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/user-registry/internal/handler"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Users  *handler.UsersHandler
	Invite *handler.InviteHandler
}

// Register wires all HTTP routes for the API. Paths and status codes are
// part of the published contract and must not change.
func Register(e *echo.Echo, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"status": "ok"})
	})

	e.POST("/add_users", handlers.Users.Create)
	e.GET("/get_users", handlers.Users.List)
	e.PATCH("/update_users/:user_id", handlers.Users.Update)
	e.DELETE("/delete_users/:user_id", handlers.Users.Delete)

	e.POST("/send_invite", handlers.Invite.Send)
}
