package dto

// FormatoFecha is the wire format for calendar dates.
const FormatoFecha = "2006-01-02"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearEmpleadoRequest creates a login account, assigns its role and creates
// the employee profile. GroupID is checked before any other rule.
type CrearEmpleadoRequest struct {
	Username     string `json:"username"      validate:"required,min=1,max=150"`
	Password     string `json:"password"      validate:"required,min=8"`
	Email        string `json:"email"         validate:"omitempty,email"`
	GroupID      string `json:"group_id"      validate:"required,uuid"`
	Nombre       string `json:"nombre"        validate:"max=100"`
	Apellido     string `json:"apellido"      validate:"max=100"`
	DNI          string `json:"dni"           validate:"max=20"`
	Telefono     string `json:"telefono"      validate:"max=30"`
	Direccion    string `json:"direccion"     validate:"max=200"`
	FechaIngreso string `json:"fecha_ingreso" validate:"omitempty,datetime=2006-01-02"`
}

// ActualizarUsuarioRequest edits an account from the employee collection.
// A non-empty GroupID replaces every role the user holds.
type ActualizarUsuarioRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1,max=150"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	GroupID  *string `json:"group_id" validate:"omitempty,uuid"`
	Nombre   *string `json:"nombre"   validate:"omitempty,max=100"`
	Apellido *string `json:"apellido" validate:"omitempty,max=100"`
}

// ActualizarEmpleadoRequest is a partial update of the employee profile.
type ActualizarEmpleadoRequest struct {
	Nombre       *string `json:"nombre"        validate:"omitempty,max=100"`
	Apellido     *string `json:"apellido"      validate:"omitempty,max=100"`
	DNI          *string `json:"dni"           validate:"omitempty,max=20"`
	Telefono     *string `json:"telefono"      validate:"omitempty,max=30"`
	Direccion    *string `json:"direccion"     validate:"omitempty,max=200"`
	FechaIngreso *string `json:"fecha_ingreso" validate:"omitempty,datetime=2006-01-02"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioCreado struct {
	ID       string        `json:"id"`
	Username string        `json:"username"`
	Email    string        `json:"email"`
	Roles    []RolResponse `json:"roles"`
}

type EmpleadoCreadoResponse struct {
	Message string        `json:"message"`
	User    UsuarioCreado `json:"user"`
}

// UsuarioInfoResponse is one row of the employee collection.
type UsuarioInfoResponse struct {
	ID           string   `json:"id"`
	IDEmpleado   *string  `json:"id_empleados"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	Roles        []string `json:"roles"`
	Activo       bool     `json:"is_active"`
	Nombre       string   `json:"nombre"`
	Apellido     string   `json:"apellido"`
	DNI          string   `json:"dni"`
	Telefono     string   `json:"telefono"`
	Direccion    string   `json:"direccion"`
	FechaIngreso string   `json:"fecha_ingreso"`
}

// EmpleadoResponse is the employee detail representation.
type EmpleadoResponse struct {
	ID           string   `json:"id_empleados"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	Activo       bool     `json:"is_active"`
	Nombre       string   `json:"nombre"`
	Apellido     string   `json:"apellido"`
	DNI          string   `json:"dni"`
	Telefono     string   `json:"telefono"`
	Direccion    string   `json:"direccion"`
	FechaIngreso string   `json:"fecha_ingreso"`
	Roles        []string `json:"roles"`
}

type EmpleadoActualizadoResponse struct {
	Message  string           `json:"message"`
	Empleado EmpleadoResponse `json:"empleado"`
}

type EmpleadoInactivadoResponse struct {
	Message    string `json:"message"`
	EmpleadoID string `json:"empleado_id"`
}
