package main

import (
	_ "embed"

	"github.com/demiurge-app/universe-wiki-service/cmd"
)

//go:embed config/config.yaml
var c string

func main() {
	cmd.Execute(c)
}
