package request

type MovieRequest struct {
	Name              string `json:"name" validate:"required,min=1,max=200"`
	DurationInMinutes int    `json:"duration_in_minutes" validate:"required,min=1,max=999"`
}

type MovieUpdateRequest struct {
	Name              *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	DurationInMinutes *int    `json:"duration_in_minutes,omitempty" validate:"omitempty,min=1,max=999"`
}

// HasChanges reports whether at least one field is present; partial
// updates with an empty payload are rejected upstream.
func (r *MovieUpdateRequest) HasChanges() bool {
	return r.Name != nil || r.DurationInMinutes != nil
}
