package dto

// CreateUserRequest entrada para crear un usuario (password en texto, se
// hashea con bcrypt en el caso de uso).
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email" validate:"omitempty,email,max=255"`
	Rol      string `json:"rol" validate:"required,oneof=super admin user"`
}

// UpdateUserRequest entrada para actualización parcial de un usuario.
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=100"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Rol      *string `json:"rol" validate:"omitempty,oneof=super admin user"`
	Estado   *string `json:"estado" validate:"omitempty,oneof=active inactive"`
}

// UserResponse salida de un usuario (sin hash).
type UserResponse struct {
	ID       int64  `json:"id_user"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Rol      string `json:"rol"`
	Estado   string `json:"estado"`
}

// UserListResponse lista de usuarios con su total.
type UserListResponse struct {
	Users []UserResponse `json:"data"`
	Total int            `json:"total"`
}

// LoginRequest entrada para login de usuarios.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// FactoryLoginRequest entrada del login alterno de talleres por documento.
type FactoryLoginRequest struct {
	DocumentID string `json:"document_id" validate:"required,min=1,max=50"`
}

// FactoryLoginResponse salida del login de talleres.
type FactoryLoginResponse struct {
	Token   string          `json:"token"`
	Factory FactoryResponse `json:"factory"`
}
