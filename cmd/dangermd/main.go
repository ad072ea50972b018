package main

import (
	"os"

	"github.com/dshills/dangermd/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
