package main

import (
	"os"

	"github.com/mna/mainer"
)

// placeholder values, replaced on build
var (
	version   = "{v}"
	buildDate = "{d}"
)

func main() {
	c := Cmd{BuildVersion: version, BuildDate: buildDate}
	os.Exit(int(c.Main(os.Args, mainer.CurrentStdio())))
}
