// Command forthic runs programs written in a small stack-oriented
// concatenative language.
package main

import (
	"os"

	"github.com/forthic-lang/forthic/cmd/forthic/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
