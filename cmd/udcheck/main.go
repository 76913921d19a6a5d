// Command udcheck runs the Sardinas–Patterson unique-decodability test on
// codes given on the command line.
//
// Usage:
//
//	udcheck check 0 11 010 101
//	udcheck batch 0,11,001,101 0,11,010,101
//	udcheck demo --output yaml
//
// Exit status is 0 when every code is uniquely decodable, 2 when at least
// one is not, and 1 on any error.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "udcheck:", err)
		os.Exit(exitError)
	}

	root := newRootCmd(cfg, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		if errors.Is(err, errNotDecodable) {
			os.Exit(exitAmbiguous)
		}
		fmt.Fprintln(os.Stderr, "udcheck:", err)
		os.Exit(exitError)
	}
}
