// Package handler contains the HTTP handlers for the application.
package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathID parses the ":id" route parameter as a UUID.
func pathID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// currentUserID returns the authenticated user's ID placed on the context by
// the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get("userID").(uuid.UUID)

	return id, ok
}
