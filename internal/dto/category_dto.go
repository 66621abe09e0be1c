package dto

import (
	"github.com/google/uuid"
)

type CategoryNodeResponse struct {
	Id       uuid.UUID               `json:"id"`
	Name     string                  `json:"name"`
	ParentId *uuid.UUID              `json:"parent_id"`
	Children []*CategoryNodeResponse `json:"children"`
}
