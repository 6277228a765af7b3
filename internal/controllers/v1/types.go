package v1

import (
	gb_uuid "github.com/gagyebu/backend/internal/uuid"
	"golang.org/x/exp/slices"
)

type URIID struct {
	ID gb_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type QueryMonth struct {
	Month string `form:"month" example:"2024-06"` // Year and month in YYYY-MM format
}

// filterSet reports whether a query filter field was present in the request.
func filterSet(setFields []string, name string) bool {
	return slices.Contains(setFields, name)
}
