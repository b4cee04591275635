package main

import (
	"log"

	"github.com/mireku/cardik/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
