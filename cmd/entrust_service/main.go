package main

import (
	"os"

	_ "go.uber.org/automaxprocs"

	"entrust_service/internal/cmd"
)

//go:generate swag init -g ../../internal/api/router/router.go -o ../../docs

const (
	exitFailure = 1
)

func main() {
	root := cmd.NewRootCommand()

	if err := root.Execute(); err != nil {
		os.Exit(exitFailure)
	}
}
