// Package main is the entry point of the population dashboard server.
package main

import (
	"os"
)

func main() {
	os.Exit(Execute())
}
