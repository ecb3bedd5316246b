package main

import (
	"os"

	"github.com/bihius/weather-app/cmd/weather/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
