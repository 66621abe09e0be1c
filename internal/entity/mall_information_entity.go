package entity

import (
	"time"

	"github.com/google/uuid"
)

type MallInformation struct {
	Id                     uuid.UUID
	ProductId              uuid.UUID
	MallName               string
	CurrentPrice           int
	ProductPageURL         string
	RepresentativeImageURL string
	CreatedAt              time.Time
}
