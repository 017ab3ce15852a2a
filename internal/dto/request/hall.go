package request

type HallRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	Type       string `json:"type" validate:"required,oneof=regular premium vip"`
	ScreenType string `json:"screen_type" validate:"required,oneof=2D 3D 4DX IMAX"`
	Seats      int    `json:"seats" validate:"required,min=1,max=2000"`
}

type HallUpdateRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Type       *string `json:"type,omitempty" validate:"omitempty,oneof=regular premium vip"`
	ScreenType *string `json:"screen_type,omitempty" validate:"omitempty,oneof=2D 3D 4DX IMAX"`
	Seats      *int    `json:"seats,omitempty" validate:"omitempty,min=1,max=2000"`
}

func (r *HallUpdateRequest) HasChanges() bool {
	return r.Name != nil || r.Type != nil || r.ScreenType != nil || r.Seats != nil
}
