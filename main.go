package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"

	"github.com/meghashyamc/spacerocks/config"
	"github.com/meghashyamc/spacerocks/frontend"
	"github.com/meghashyamc/spacerocks/logger"
	"github.com/meghashyamc/spacerocks/storage"
)

func main() {
	env := flag.String("env", "", "config environment to load (config/config.<env>.yaml)")
	flag.Parse()

	cfg, err := config.Load(*env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.GetLogLevel())
	store := storage.NewJSONFile(afero.NewOsFs(), cfg.GetScorePath())

	app, err := frontend.NewApp(cfg, log, store)
	if err != nil {
		log.Error("failed to start", "err", err)
		os.Exit(1)
	}
	if err := app.Run(); err != nil {
		log.Error("error running game", "err", err)
		os.Exit(1)
	}
}
