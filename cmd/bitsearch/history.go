package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/bitsearch"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if c.Clear {
		n, err := deps.Store.DeleteResults(deps.Ctx, c.Query)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", bitsearch.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Deleted %d saved results\n", n)
		return nil
	}

	filter := bitsearch.ResultFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Query != "" {
		filter.Query = &c.Query
	}

	results, err := deps.Store.FindResults(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bitsearch.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No saved results. Use 'bitsearch search --save' to record some.")
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "%s\t%s\t%s\n",
			r.FetchedAt.Local().Format(time.DateTime), r.Query, bitsearch.FormatResult(&r.Result))
	}

	return nil
}
