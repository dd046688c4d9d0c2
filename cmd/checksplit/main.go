// checksplit loads the persisted check snapshot and prints who owes what.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/NolanFinn/Check-Splitter/internal/cli"
	"github.com/NolanFinn/Check-Splitter/internal/domain/engine"
	"github.com/NolanFinn/Check-Splitter/internal/infrastructure/config"
	"github.com/NolanFinn/Check-Splitter/internal/infrastructure/storage"
)

func main() {
	_ = godotenv.Load()

	flags := cli.ParseShowFlags()
	cfg := config.LoadOrEnvWithPath(flags.Config)

	dbPath := cfg.Storage.DatabasePath
	if flags.DB != "" {
		dbPath = flags.DB
	}

	store, err := storage.NewStorage(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	c, err := store.LoadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	result := engine.Compute(c)
	settlements := engine.Settlements(result, c.Payer, c.People)

	if flags.JSON {
		out := map[string]any{
			"check":       c,
			"result":      result,
			"settlements": settlements,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cli.PrintCheck(c, result, settlements)
}
