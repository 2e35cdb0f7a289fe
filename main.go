package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/papapumpkin/folio/cmd"
)

func main() {
	cmd.Execute()
}
