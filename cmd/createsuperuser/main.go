// Comando createsuperuser: crea una cuenta con is_staff e is_superuser activos.
// Pasa por la misma validación y hashing que el registro normal.
//
// Uso:
//
//	createsuperuser -email admin@example.com -first-name Ada -last-name Lovelace
//
// La contraseña se lee de SUPERUSER_PASSWORD para no dejarla en el historial del shell.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/jhoicas/Inventario-api/internal/application/auth"
	"github.com/jhoicas/Inventario-api/internal/application/dto"
	"github.com/jhoicas/Inventario-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-api/pkg/config"
	"github.com/jhoicas/Inventario-api/pkg/logger"
)

func main() {
	email := flag.String("email", "", "email del superusuario")
	firstName := flag.String("first-name", "", "nombre")
	lastName := flag.String("last-name", "", "apellido")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	password := os.Getenv("SUPERUSER_PASSWORD")
	if *email == "" || password == "" {
		log.Fatal().Msg("se requieren -email y la variable SUPERUSER_PASSWORD")
	}

	ctx := context.Background()
	if err := postgres.RunMigrations(ctx, cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	authUC := auth.NewAuthUseCase(
		postgres.NewUserRepository(pool),
		postgres.NewRefreshTokenRepository(pool),
		postgres.NewTxRunner(pool),
		auth.JWTConfig{
			Secret:        cfg.JWT.Secret,
			AccessMinutes: cfg.JWT.AccessMinutes,
			RefreshHours:  cfg.JWT.RefreshHours,
			Issuer:        cfg.JWT.Issuer,
		},
	)

	user, err := authUC.RegisterSuperuser(dto.RegisterRequest{
		Email:     *email,
		FirstName: *firstName,
		LastName:  *lastName,
		Password:  password,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear superusuario")
	}
	log.Info().Str("email", user.Email).Msg("superusuario creado")
}
