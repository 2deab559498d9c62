// Command lexica builds a vocabulary network and fine-tuning datasets from a
// folder of documents.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+err.Error())
		os.Exit(exitCode(err))
	}
}
