package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adityakumar003/TrainX/middlewares"
	"github.com/adityakumar003/TrainX/services"
)

// respondError maps the service failure taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrUnauthenticated), errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrMissingParameters), errors.Is(err, services.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, services.ErrBadModelOutput):
		status = http.StatusInternalServerError
	case errors.Is(err, services.ErrUpstream):
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// currentUserID reads the session user set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(middlewares.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": services.ErrUnauthenticated.Error()})
		return "", false
	}
	return userID, true
}
