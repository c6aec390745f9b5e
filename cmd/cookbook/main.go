package main

import (
	"fmt"
	"os"

	"github.com/goliatone/go-cookbook"
)

var moduleBuilder = func(cfg cookbook.Config) (*cookbook.Module, error) {
	return cookbook.New(cfg)
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
