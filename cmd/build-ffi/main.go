package main

import (
	"os"

	"github.com/anooppoommen/libsignal-client/internal/ffibuild"
)

func main() {
	os.Exit(run(os.Args[1:], ffibuild.ExecRunner{}, os.Stdout, os.Stderr))
}
