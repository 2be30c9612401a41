// Package permission define la tabla estática rol → capacidades. La
// verificación ocurre en el middleware HTTP antes de invocar un servicio;
// es un control en el borde, no una frontera de seguridad dentro de los
// servicios.
package permission

// Capacidades verificables por el middleware.
const (
	VerTrabajadores    = "ver_trabajadores"
	AgregarTrabajador  = "agregar_trabajador"
	EditarTrabajador   = "editar_trabajador"
	EliminarTrabajador = "eliminar_trabajador"
	GestionarEntregas  = "gestionar_entregas"
	VerCalculos        = "ver_calculos"
	CrearUsuario       = "crear_usuario"
	EliminarUsuario    = "eliminar_usuario"
)

// tabla rol → conjunto de capacidades. Tabla de datos, no herencia.
var tabla = map[string]map[string]bool{
	"super": {
		VerTrabajadores:    true,
		AgregarTrabajador:  true,
		EditarTrabajador:   true,
		EliminarTrabajador: true,
		GestionarEntregas:  true,
		VerCalculos:        true,
		CrearUsuario:       true,
		EliminarUsuario:    true,
	},
	"admin": {
		VerTrabajadores:    false,
		AgregarTrabajador:  true,
		EditarTrabajador:   false,
		EliminarTrabajador: false,
		GestionarEntregas:  true,
		VerCalculos:        false,
		CrearUsuario:       false,
		EliminarUsuario:    false,
	},
	"user": {
		VerTrabajadores:    false,
		AgregarTrabajador:  false,
		EditarTrabajador:   false,
		EliminarTrabajador: false,
		GestionarEntregas:  false,
		VerCalculos:        false,
		CrearUsuario:       false,
		EliminarUsuario:    false,
	},
}

// Allowed indica si el rol tiene la capacidad. Roles desconocidos no tienen
// ninguna.
func Allowed(rol, capacidad string) bool {
	caps, ok := tabla[rol]
	if !ok {
		return false
	}
	return caps[capacidad]
}

// Capabilities devuelve una copia del mapa de capacidades del rol. Roles
// desconocidos reciben un mapa vacío.
func Capabilities(rol string) map[string]bool {
	caps := tabla[rol]
	out := make(map[string]bool, len(caps))
	for c, v := range caps {
		out[c] = v
	}
	return out
}

// Roles devuelve los roles conocidos por la tabla.
func Roles() []string {
	out := make([]string, 0, len(tabla))
	for r := range tabla {
		out = append(out, r)
	}
	return out
}
