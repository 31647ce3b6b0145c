// Package main is the entry point for the seed validation tool.
package main

import (
	"seedcheck/cmd/seedcheck/cmd"
)

func main() {
	cmd.Execute()
}
