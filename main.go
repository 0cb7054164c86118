// Package main is the entry point for the sysport CLI.
package main

import "sabos.dev/pkg/sysport/cmd"

func main() {
	cmd.Execute()
}
