package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lendwise/service-lending/internal/domain"
	"github.com/lendwise/service-lending/internal/middleware"
)

// respondError maps a domain error kind to its HTTP status. Identity and
// existence failures are not-found by contract; a duplicate email is a
// conflict; everything else is a bad request.
func respondError(c *gin.Context, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	switch de.Kind {
	case domain.KindUnknownID, domain.KindIllegalUser, domain.KindBookingByOwner:
		c.JSON(http.StatusNotFound, gin.H{"error": de.Message})
	case domain.KindDuplicateEmail, domain.KindConflict:
		c.JSON(http.StatusConflict, gin.H{"error": de.Message})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": de.Message})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// sharerID extracts the caller identity set by the sharer middleware and
// fails the request when the header is missing or malformed.
func sharerID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetSharerID(c)
	if !ok {
		badRequest(c, middleware.SharerIDHeader+" header is required")
		return uuid.Nil, false
	}
	return id, true
}

// parsePage reads the from/size query parameters and validates them into an
// offset page. Defaults: from=0, size=20.
func parsePage(c *gin.Context) (domain.OffsetPage, bool) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil {
		badRequest(c, "invalid from parameter")
		return domain.OffsetPage{}, false
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "20"))
	if err != nil {
		badRequest(c, "invalid size parameter")
		return domain.OffsetPage{}, false
	}

	page, err := domain.NewOffsetPage(from, size)
	if err != nil {
		respondError(c, err)
		return domain.OffsetPage{}, false
	}
	return page, true
}
