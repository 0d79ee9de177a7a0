package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gestionpos/internal/dto"
	"gestionpos/internal/model"
	"gestionpos/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// EmpleadoService covers account creation, the admin employee collection
// (keyed by user id) and the employee detail operations (keyed by the
// employee's own id).
type EmpleadoService interface {
	CrearAdmin(ctx context.Context, req dto.CrearAdminRequest) (*dto.MensajeResponse, error)
	CrearEmpleado(ctx context.Context, req dto.CrearEmpleadoRequest) (*dto.EmpleadoCreadoResponse, error)

	ListarUsuarios(ctx context.Context) ([]dto.UsuarioInfoResponse, error)
	ObtenerUsuario(ctx context.Context, id uuid.UUID) (*dto.UsuarioInfoResponse, error)
	ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioInfoResponse, error)
	EliminarUsuario(ctx context.Context, id uuid.UUID) error

	ObtenerEmpleado(ctx context.Context, id uuid.UUID) (*dto.EmpleadoResponse, error)
	ActualizarEmpleado(ctx context.Context, id uuid.UUID, req dto.ActualizarEmpleadoRequest) (*dto.EmpleadoActualizadoResponse, error)
	InactivarEmpleado(ctx context.Context, id uuid.UUID) (*dto.EmpleadoInactivadoResponse, error)
}

type empleadoService struct {
	usuarios  repository.UsuarioRepository
	roles     repository.RolRepository
	empleados repository.EmpleadoRepository
}

func NewEmpleadoService(usuarios repository.UsuarioRepository, roles repository.RolRepository, empleados repository.EmpleadoRepository) EmpleadoService {
	return &empleadoService{usuarios: usuarios, roles: roles, empleados: empleados}
}

// ── Alta de cuentas ──────────────────────────────────────────────────────────

func (s *empleadoService) CrearAdmin(ctx context.Context, req dto.CrearAdminRequest) (*dto.MensajeResponse, error) {
	rol, err := s.roles.FindOrCreate(ctx, model.RolAdmin)
	if err != nil {
		return nil, fmt.Errorf("%w Admin: %v", ErrRoleAssignment, err)
	}
	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &model.Usuario{Username: req.Username, Email: req.Email, PasswordHash: hash, Activo: true}
	if err := s.usuarios.CrearConRoles(ctx, user, []model.Rol{*rol}, nil); err != nil {
		return nil, s.altaErr(err)
	}

	log.Info().Str("usuario", user.Username).Msg("usuario admin creado")
	return &dto.MensajeResponse{Message: `Usuario Admin creado y asignado al rol "Admin"`}, nil
}

// CrearEmpleado requires group_id before looking at anything else in the
// payload. The account, its role and the employee profile are written in one
// transaction and the response carries the roles read back afterwards.
func (s *empleadoService) CrearEmpleado(ctx context.Context, req dto.CrearEmpleadoRequest) (*dto.EmpleadoCreadoResponse, error) {
	if strings.TrimSpace(req.GroupID) == "" {
		return nil, Invalid("group_id", "El campo group_id es requerido.")
	}
	rol, err := rolPorID(ctx, s.roles, req.GroupID)
	if err != nil {
		return nil, err
	}

	emp := &model.Empleado{
		Nombre:    req.Nombre,
		Apellido:  req.Apellido,
		DNI:       req.DNI,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
	}
	if req.FechaIngreso != "" {
		f, err := parseFecha("fecha_ingreso", req.FechaIngreso)
		if err != nil {
			return nil, err
		}
		emp.FechaIngreso = &f
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &model.Usuario{Username: req.Username, Email: req.Email, PasswordHash: hash, Activo: true}
	if err := s.usuarios.CrearConRoles(ctx, user, []model.Rol{*rol}, emp); err != nil {
		return nil, s.altaErr(err)
	}

	creado, err := s.usuarios.FindByID(ctx, user.ID)
	if err != nil {
		return nil, storeErr(err, "usuario")
	}
	log.Info().Str("usuario", creado.Username).Str("rol", rol.Nombre).Msg("empleado creado")

	return &dto.EmpleadoCreadoResponse{
		Message: fmt.Sprintf("Empleado %q creado correctamente con rol asignado", creado.Username),
		User: dto.UsuarioCreado{
			ID:       creado.ID.String(),
			Username: creado.Username,
			Email:    creado.Email,
			Roles:    mapRoles(creado.Roles),
		},
	}, nil
}

// altaErr maps a failed account insert. Duplicate usernames are conflicts;
// anything else happened while assigning the role or profile.
func (s *empleadoService) altaErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("el nombre de usuario ya existe: %w", ErrConflict)
	}
	return fmt.Errorf("%w: %v", ErrRoleAssignment, err)
}

// ── Colección de empleados (por id de usuario) ───────────────────────────────

func mapUsuarioInfo(u model.Usuario) dto.UsuarioInfoResponse {
	resp := dto.UsuarioInfoResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
		Roles:    u.RolNames(),
		Activo:   u.Activo,
	}
	if id := u.EmpleadoID(); id != nil {
		idStr := id.String()
		resp.IDEmpleado = &idStr
	}
	if e := u.Empleado; e != nil {
		resp.Nombre = e.Nombre
		resp.Apellido = e.Apellido
		resp.DNI = e.DNI
		resp.Telefono = e.Telefono
		resp.Direccion = e.Direccion
		resp.FechaIngreso = formatFecha(e.FechaIngreso)
	}
	return resp
}

func formatFecha(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dto.FormatoFecha)
}

func (s *empleadoService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioInfoResponse, error) {
	users, err := s.usuarios.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioInfoResponse, 0, len(users))
	for _, u := range users {
		out = append(out, mapUsuarioInfo(u))
	}
	return out, nil
}

func (s *empleadoService) ObtenerUsuario(ctx context.Context, id uuid.UUID) (*dto.UsuarioInfoResponse, error) {
	u, err := s.usuarios.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "usuario")
	}
	resp := mapUsuarioInfo(*u)
	return &resp, nil
}

// ActualizarUsuario resolves group_id before writing anything. nombre and
// apellido are stored on the linked employee profile, when there is one.
func (s *empleadoService) ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioInfoResponse, error) {
	u, err := s.usuarios.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "usuario")
	}

	var roles []model.Rol
	if req.GroupID != nil && *req.GroupID != "" {
		rol, err := rolPorID(ctx, s.roles, *req.GroupID)
		if err != nil {
			return nil, err
		}
		roles = []model.Rol{*rol}
	}

	set(&u.Username, req.Username)
	set(&u.Email, req.Email)

	emp := u.Empleado
	if emp != nil {
		set(&emp.Nombre, req.Nombre)
		set(&emp.Apellido, req.Apellido)
	}

	if err := s.usuarios.Actualizar(ctx, u, roles, emp); err != nil {
		return nil, storeErr(err, "usuario")
	}
	return s.ObtenerUsuario(ctx, id)
}

func (s *empleadoService) EliminarUsuario(ctx context.Context, id uuid.UUID) error {
	if err := s.usuarios.Delete(ctx, id); err != nil {
		return storeErr(err, "usuario")
	}
	log.Info().Str("usuario_id", id.String()).Msg("usuario eliminado")
	return nil
}

// ── Detalle de empleado (por id de empleado) ─────────────────────────────────

func mapEmpleado(e model.Empleado) dto.EmpleadoResponse {
	resp := dto.EmpleadoResponse{
		ID:           e.ID.String(),
		Nombre:       e.Nombre,
		Apellido:     e.Apellido,
		DNI:          e.DNI,
		Telefono:     e.Telefono,
		Direccion:    e.Direccion,
		FechaIngreso: formatFecha(e.FechaIngreso),
		Roles:        []string{},
	}
	if u := e.Usuario; u != nil {
		resp.Username = u.Username
		resp.Email = u.Email
		resp.Activo = u.Activo
		resp.Roles = u.RolNames()
	}
	return resp
}

func (s *empleadoService) ObtenerEmpleado(ctx context.Context, id uuid.UUID) (*dto.EmpleadoResponse, error) {
	e, err := s.empleados.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "empleado")
	}
	resp := mapEmpleado(*e)
	return &resp, nil
}

func (s *empleadoService) ActualizarEmpleado(ctx context.Context, id uuid.UUID, req dto.ActualizarEmpleadoRequest) (*dto.EmpleadoActualizadoResponse, error) {
	e, err := s.empleados.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "empleado")
	}

	if req.FechaIngreso != nil {
		if *req.FechaIngreso == "" {
			e.FechaIngreso = nil
		} else {
			f, err := parseFecha("fecha_ingreso", *req.FechaIngreso)
			if err != nil {
				return nil, err
			}
			e.FechaIngreso = &f
		}
	}
	set(&e.Nombre, req.Nombre)
	set(&e.Apellido, req.Apellido)
	set(&e.DNI, req.DNI)
	set(&e.Telefono, req.Telefono)
	set(&e.Direccion, req.Direccion)

	if err := s.empleados.Update(ctx, e); err != nil {
		return nil, storeErr(err, "empleado")
	}
	actualizado, err := s.ObtenerEmpleado(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.EmpleadoActualizadoResponse{
		Message:  "Empleado actualizado correctamente",
		Empleado: *actualizado,
	}, nil
}

// InactivarEmpleado disables the linked login account. The profile and the
// account rows are kept.
func (s *empleadoService) InactivarEmpleado(ctx context.Context, id uuid.UUID) (*dto.EmpleadoInactivadoResponse, error) {
	e, err := s.empleados.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "empleado")
	}
	if e.UsuarioID != nil {
		if err := s.usuarios.SetActivo(ctx, *e.UsuarioID, false); err != nil {
			return nil, storeErr(err, "usuario")
		}
	}

	log.Info().Str("empleado_id", e.ID.String()).Msg("empleado inactivado")
	return &dto.EmpleadoInactivadoResponse{
		Message:    "Empleado inactivado correctamente",
		EmpleadoID: e.ID.String(),
	}, nil
}
