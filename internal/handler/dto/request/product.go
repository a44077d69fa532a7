package request

import (
	"strings"

	"authentithief/internal/pkg/patch"
	"authentithief/internal/usecase/commands"
)

type RegisterProductRequest struct {
	Name                string  `json:"name" binding:"required,max=128"`
	Brand               string  `json:"brand,omitempty" binding:"omitempty,max=128"`
	Description         string  `json:"description,omitempty" binding:"omitempty,max=1000"`
	ExpirationTimestamp *int64  `json:"expiration_timestamp,omitempty" binding:"omitempty,gt=0"`
	Owner               *string `json:"owner,omitempty" binding:"omitempty,max=128"`
}

func (r RegisterProductRequest) ToCommand() commands.RegisterProductRequest {
	return commands.RegisterProductRequest{
		Name:                strings.TrimSpace(r.Name),
		Brand:               strings.TrimSpace(r.Brand),
		Description:         r.Description,
		ExpirationTimestamp: r.ExpirationTimestamp,
		Owner:               strings.TrimSpace(patch.Coalesce(r.Owner, "")),
	}
}

type ListProductsQuery struct {
	Start int `form:"start" binding:"omitempty,gte=0"`
	Count int `form:"count" binding:"omitempty,gte=0,lte=200"`
}
