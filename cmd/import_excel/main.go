// import_excel carga masiva de productos desde un archivo .xlsx al catálogo.
//
// Uso: go run ./cmd/import_excel productos.xlsx
// La primera hoja debe tener cabecera y las columnas:
// name | description | sku | price | cost | stock | category_id | provider_id
//
// La carga escribe directo al catálogo (stock inicial), no pasa por el motor de
// inventario y no genera asientos en el libro de movimientos. Filas inválidas
// se saltan y se reporta el total importado/saltado al final.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/techstore/inventory-api/internal/application/importer"
	"github.com/techstore/inventory-api/internal/infrastructure/postgres"
	"github.com/techstore/inventory-api/pkg/config"
	"github.com/techstore/inventory-api/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: import_excel <archivo.xlsx>")
		os.Exit(1)
	}
	path := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	f, err := os.Open(path)
	if err != nil {
		log.Fatal().Err(err).Str("archivo", path).Msg("abrir archivo")
	}
	defer f.Close()

	im := importer.NewExcelImporter(postgres.NewProductRepository(pool))
	result, err := im.Import(ctx, f)
	if err != nil {
		log.Fatal().Err(err).Msg("importación fallida")
	}

	log.Info().
		Int("importados", result.Imported).
		Int("saltados", result.Skipped).
		Str("archivo", path).
		Msg("importación finalizada")
	fmt.Printf("Importados: %d, saltados: %d\n", result.Imported, result.Skipped)
}
