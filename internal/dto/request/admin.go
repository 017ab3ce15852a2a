package request

type AssignRoleRequest struct {
	UserID string `json:"userId" validate:"required,uuid4"`
	Role   string `json:"role" validate:"required,oneof=HALL_MANAGER MOVIES_MANAGER TICKETS_MANAGER SNACKS_MANAGER EMPLOYEE"`
}
