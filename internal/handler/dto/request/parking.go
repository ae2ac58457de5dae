package request

import (
	"logipark/internal/domain/parking"
	"logipark/internal/usecase/commands"
)

type AddSpaceRequest struct {
	SpaceNumber string `json:"space_number" binding:"required,max=20"`
	SpaceType   string `json:"space_type" binding:"required"`
	// IsAvailable defaults to true.
	IsAvailable *bool `json:"is_available,omitempty"`
}

func (r *AddSpaceRequest) ToInput() (commands.AddSpaceInput, error) {
	spaceType, err := parking.ParseSpaceType(r.SpaceType)
	if err != nil {
		return commands.AddSpaceInput{}, err
	}
	available := true
	if r.IsAvailable != nil {
		available = *r.IsAvailable
	}
	return commands.AddSpaceInput{
		SpaceNumber: r.SpaceNumber,
		SpaceType:   spaceType,
		IsAvailable: available,
	}, nil
}

type SpaceGroupRequest struct {
	SpaceType  string `json:"space_type" binding:"required"`
	Count      int    `json:"count" binding:"min=0"`
	Prefix     string `json:"prefix" binding:"max=10"`
	StartIndex int    `json:"start_index" binding:"min=0"`
}

type RegenerateSpacesRequest struct {
	TotalSpaces int                 `json:"total_spaces" binding:"min=0"`
	Groups      []SpaceGroupRequest `json:"groups" binding:"required,dive"`
}

func (r *RegenerateSpacesRequest) ToPlan() (parking.GenerationPlan, error) {
	groups := make([]parking.SpaceGroup, 0, len(r.Groups))
	for _, g := range r.Groups {
		spaceType, err := parking.ParseSpaceType(g.SpaceType)
		if err != nil {
			return parking.GenerationPlan{}, err
		}
		groups = append(groups, parking.SpaceGroup{
			Type:       spaceType,
			Count:      g.Count,
			Prefix:     g.Prefix,
			StartIndex: g.StartIndex,
		})
	}
	return parking.NewGenerationPlan(r.TotalSpaces, groups)
}

type OccupySpaceRequest struct {
	// VehicleRef is a vehicle id or a license plate.
	VehicleRef string `json:"vehicle_ref" binding:"required,max=64"`
}
