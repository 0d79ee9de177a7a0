// Creates the base roles and an administrator account, or resets the
// password of an existing one.
// Uso: go run ./cmd/seeduser -username admin -password secreto
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"gestionpos/internal/config"
	"gestionpos/internal/infra"
	"gestionpos/internal/model"
	"gestionpos/internal/repository"
	"gestionpos/internal/service"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {
	username := flag.String("username", "admin", "nombre de usuario")
	password := flag.String("password", "", "contraseña (obligatoria)")
	email := flag.String("email", "", "correo del administrador")
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "uso: seeduser -username admin -password <clave> [-email correo]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect error")
	}
	ctx := context.Background()
	if err := infra.Migrate(ctx, db, "up"); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	roles := repository.NewRolRepository(db)
	admin, err := roles.FindOrCreate(ctx, model.RolAdmin)
	if err != nil {
		log.Fatal().Err(err).Msg("rol Admin")
	}
	if _, err := roles.FindOrCreate(ctx, model.RolEmpleado); err != nil {
		log.Fatal().Err(err).Msg("rol Empleado")
	}

	hash, err := service.HashPassword(*password)
	if err != nil {
		log.Fatal().Err(err).Msg("bcrypt error")
	}

	usuarios := repository.NewUsuarioRepository(db)
	u, err := usuarios.FindByUsername(ctx, *username)
	switch {
	case err == nil:
		u.PasswordHash = hash
		if *email != "" {
			u.Email = *email
		}
		err = usuarios.Actualizar(ctx, u, []model.Rol{*admin}, nil)
	case errors.Is(err, gorm.ErrRecordNotFound):
		u = &model.Usuario{Username: *username, Email: *email, PasswordHash: hash, Activo: true}
		err = usuarios.CrearConRoles(ctx, u, []model.Rol{*admin}, nil)
	}
	if err != nil {
		log.Fatal().Err(err).Str("username", *username).Msg("no se pudo guardar el usuario")
	}
	fmt.Printf("usuario '%s' creado/actualizado con rol %s\n", *username, model.RolAdmin)
}
