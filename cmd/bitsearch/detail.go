package main

import (
	"fmt"

	"github.com/fwojciec/bitsearch"
)

// Run executes the detail command.
func (c *DetailCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bitsearch.ErrorMessage(err))
		return err
	}

	d, err := deps.Details.Parse(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bitsearch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "title: %s\n", d.Title)
	if d.Magnet != "" {
		fmt.Fprintf(deps.Stdout, "magnet: %s\n", d.Magnet)
	}
	if d.InfoHash != "" {
		fmt.Fprintf(deps.Stdout, "infohash: %s\n", d.InfoHash)
	}
	if len(d.Files) > 0 {
		fmt.Fprintf(deps.Stdout, "files (%d):\n", len(d.Files))
		for _, f := range d.Files {
			if f.Size == "" {
				fmt.Fprintf(deps.Stdout, "  %s\n", f.Name)
				continue
			}
			fmt.Fprintf(deps.Stdout, "  %s  %s\n", f.Name, f.Size)
		}
	}

	return nil
}
