package main

import (
	"context"
	"log"
	"os"

	"enrollform/internal/buildinfo"
	"enrollform/internal/cli"
	"enrollform/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
