package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/karstlang/karst/pkg/cli"
	karst "github.com/karstlang/karst/pkg/embed"
)

func main() {
	configPath := flag.String("config", "", "path to karst.yaml")
	trace := flag.Bool("trace", false, "debug-level primitive tracing")
	flag.Parse()

	var opts []karst.Option
	if *configPath != "" {
		opts = append(opts, karst.WithConfigFile(*configPath))
	}
	if *trace {
		opts = append(opts, karst.WithTrace())
	}

	rt, err := karst.Init(opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "karst:", err)
		os.Exit(1)
	}
	defer rt.Close()

	if err := cli.New(rt, os.Stdout).Run(os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, "karst:", err)
		os.Exit(1)
	}
}
