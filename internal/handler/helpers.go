package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"gestionpos/internal/apierror"
	"gestionpos/internal/middleware"
	"gestionpos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Report fields by their JSON name.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// bindJSON binds the body without running validation tags.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	return true
}

// validateStruct runs go-playground/validator tags and writes a 400 with
// one message per failing field.
func validateStruct(c *gin.Context, req interface{}) bool {
	err := validate.Struct(req)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return false
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe)] = fieldMessage(fe)
	}
	c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
	return false
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	return bindJSON(c, req) && validateStruct(c, req)
}

// fieldPath drops the struct name from the namespace:
// "CrearAlquilerRequest.productos[0].cantidad" → "productos[0].cantidad".
func fieldPath(fe validator.FieldError) string {
	if _, rest, ok := strings.Cut(fe.Namespace(), "."); ok {
		return rest
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo es requerido."
	case "email":
		return "Introduzca una dirección de correo electrónico válida."
	case "uuid":
		return "Debe ser un UUID válido."
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return "Longitud mínima " + fe.Param() + "."
		}
		return "Debe ser mayor o igual a " + fe.Param() + "."
	case "max":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return "Longitud máxima " + fe.Param() + "."
		}
		return "Debe ser menor o igual a " + fe.Param() + "."
	case "gt":
		return "Debe ser mayor a " + fe.Param() + "."
	case "oneof":
		return "Valor inválido, opciones: " + fe.Param() + "."
	case "datetime":
		return "Formato de fecha inválido, use AAAA-MM-DD."
	case "url":
		return "Introduzca una URL válida."
	default:
		return "Valor inválido (" + fe.Tag() + ")."
	}
}

// respondError writes the HTTP response for a service error.
func respondError(c *gin.Context, err error) {
	var fe *service.FieldError
	switch {
	case errors.As(err, &fe):
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fe.Fields))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New(capitalize(err.Error())))
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, apierror.New("Credenciales inválidas"))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, apierror.New("Permisos insuficientes"))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, apierror.New(capitalize(err.Error())))
	case errors.Is(err, service.ErrRoleAssignment):
		log.Error().Err(err).Str("request_id", c.GetString(middleware.RequestIDKey)).Msg("asignación de rol fallida")
		c.JSON(http.StatusInternalServerError, apierror.New(capitalize(err.Error())))
	case errors.Is(err, service.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, apierror.New(capitalize(err.Error())))
	case errors.Is(err, service.ErrUpstream):
		c.JSON(http.StatusBadGateway, apierror.New(capitalize(err.Error())))
	default:
		_ = c.Error(err)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}

// parseID reads a UUID path parameter, writing a 404 when it is malformed.
func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("No encontrado."))
		return uuid.Nil, false
	}
	return id, true
}

// callerFrom returns the authenticated caller, writing a 401 if missing.
func callerFrom(c *gin.Context) (service.Caller, bool) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticacion requerida"))
	}
	return caller, ok
}
