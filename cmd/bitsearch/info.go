package main

import "fmt"

// Run executes the info command.
func (c *InfoCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "url: %s\n", deps.Site.URL())
	fmt.Fprintf(deps.Stdout, "name: %s\n", deps.Site.Name())
	fmt.Fprintln(deps.Stdout, "categories:")

	for _, key := range deps.Site.CategoryKeys() {
		segment, _ := deps.Site.Category(key)
		if segment == "" {
			segment = "(any)"
		}
		fmt.Fprintf(deps.Stdout, "  %s -> %s\n", key, segment)
	}

	return nil
}
