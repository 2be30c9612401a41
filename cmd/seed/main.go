// seed crea el usuario administrador inicial y, opcionalmente, unas
// trabajadoras de ejemplo para probar el taller en local.
//
// Uso: go run ./cmd/seed [-workers]
// El password del admin sale de SEED_ADMIN_PASSWORD (obligatorio).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/infrastructure/postgres"
	"github.com/jhoicas/taller-api/pkg/bogota"
	"github.com/jhoicas/taller-api/pkg/config"
)

func main() {
	conWorkers := flag.Bool("workers", false, "crear trabajadoras de ejemplo")
	flag.Parse()

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_PASSWORD es requerido")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash de password: %v\n", err)
		os.Exit(1)
	}

	admin := &entity.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Rol:          entity.RolSuper,
		Estado:       entity.StatusActive,
	}
	switch err := users.Create(ctx, admin); err {
	case nil:
		fmt.Printf("usuario admin creado (id %d)\n", admin.ID)
	case domain.ErrDuplicate:
		fmt.Println("usuario admin ya existe, nada que hacer")
	default:
		fmt.Fprintf(os.Stderr, "crear admin: %v\n", err)
		os.Exit(1)
	}

	if !*conWorkers {
		return
	}

	workers := postgres.NewWorkerRepository(pool)
	ejemplos := []*entity.Worker{
		{Nombre: "María", Apellido: "Gómez", Cedula: "1001001001", Cargo: entity.CargoOperaria, Salario: decimal.NewFromInt(56000)},
		{Nombre: "Luz", Apellido: "Restrepo", Cedula: "1001001002", Cargo: entity.CargoOperariaPrestaciones, Salario: decimal.NewFromInt(72000)},
		{Nombre: "Camila", Apellido: "Ríos", Cedula: "1001001003", Cargo: entity.CargoAprendiz, Salario: decimal.NewFromInt(35000)},
	}
	for _, w := range ejemplos {
		w.Activo = true
		w.FechaCreacion = bogota.Now()
		switch err := workers.Create(ctx, w); err {
		case nil:
			fmt.Printf("trabajadora %s %s creada (id %d)\n", w.Nombre, w.Apellido, w.ID)
		case domain.ErrDuplicate:
			fmt.Printf("trabajadora con cédula %s ya existe\n", w.Cedula)
		default:
			fmt.Fprintf(os.Stderr, "crear trabajadora: %v\n", err)
			os.Exit(1)
		}
	}
}
