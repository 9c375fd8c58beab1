package main

import (
	"fmt"
	"os"

	"github.com/martijn/wigest/internal/cli"

	_ "github.com/martijn/wigest/docs"
)

//	@title			Wigest API
//	@version		1.0
//	@description	Management backend of a small internet service provider: clients, offers, subscriptions, payments and an audit trail.

//	@host		localhost:8000
//	@BasePath	/

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
