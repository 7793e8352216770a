// Command warrior is a gamified habit tracker for the terminal.
package main

import "github.com/agusx1211/warrior/internal/cli"

func main() {
	cli.Execute()
}
