package main

import (
	"os"

	"github.com/hearthbook/hearthbook/cookbookservice"
)

func main() {
	if err := cookbookservice.Run(); err != nil {
		os.Exit(1)
	}
}
