package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MacroPower/dimgen/cmd/dimgen/commands"
)

const (
	cmdName = "dimgen"

	shortDesc = "Generate SI dimensionality library code from a quantity table."
	longDesc  = `Generate the dimensionality library build function from a quantity table.

Each row of the table names a physical quantity followed by seven cells, one
per SI base dimension (length, mass, time, current, temperature, amount,
luminous intensity), each formatted as "{num,den}". Quantities sharing the
same exponents are registered against a single dimensionality.

The generated code is written to standard output.

Subcommand names take precedence over table paths: to generate from a table
file literally named "header", "groups" or "version", pass it as "./header".
`
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, strings.TrimLeft(err.Error(), "\n"))

		return 1
	}

	return 0
}
