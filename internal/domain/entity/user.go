package entity

// Roles válidos para User.
const (
	RolSuper  = "super"
	RolAdmin  = "admin"
	RolUser   = "user"
	RolTaller = "taller" // emitido por el login de talleres, no persiste en users
)

// User representa un usuario del sistema.
// Estado usa el enum de dos valores StatusActive/StatusInactive.
type User struct {
	ID           int64
	Username     string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Email        string
	Rol          string // super, admin, user
	Estado       string // active, inactive
}

// Activo indica si el usuario puede iniciar sesión.
func (u *User) Activo() bool {
	return u.Estado == StatusActive
}
