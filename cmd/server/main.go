package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const releaseVersion = "0.1.0"

func main() {
	log.SetFlags(0)

	// A local .env is optional; real deployments set the environment
	if err := godotenv.Load(); err == nil {
		log.Println("loaded configuration from .env")
	}

	cfg := &config{}
	cobra.CheckErr(newCmd(cfg).Execute())
}
