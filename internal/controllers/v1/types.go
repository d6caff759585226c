package v1

import (
	yard_uuid "github.com/cargoyard/backend/internal/uuid"
)

type URIID struct {
	ID yard_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}
