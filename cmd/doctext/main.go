package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/asecurityteam/doctext"
	"github.com/asecurityteam/settings/v2"
)

func main() {
	ctx := context.Background()

	// Handle the -h flag and print settings.
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.Usage = func() {}
	if err := fs.Parse(os.Args[1:]); err == flag.ErrHelp {
		fmt.Println(doctext.Help())
		return
	}

	source, err := settings.NewEnvSource(os.Environ())
	if err != nil {
		panic(err.Error())
	}
	fetcher, err := doctext.NewFetcher(ctx, source)
	if err != nil {
		panic(err.Error())
	}
	if err := doctext.Start(ctx, source, fetcher); err != nil {
		panic(err.Error())
	}
}
