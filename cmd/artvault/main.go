package main

import (
	"context"
	"os"

	"github.com/rpggio/artvault/internal/cli"
)

func main() {
	code, _ := cli.Run(context.Background(), os.Args[1:])
	os.Exit(code)
}
