package request

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=resident admin"`
}
