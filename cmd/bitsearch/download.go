package main

import (
	"fmt"

	"github.com/fwojciec/bitsearch"
)

// Run executes the download command. It prints the local path of the saved
// file, or the magnet URI unchanged.
func (c *DownloadCmd) Run(deps *Dependencies) error {
	path, err := deps.Downloader.Download(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bitsearch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s %s\n", path, c.ID)
	return nil
}
