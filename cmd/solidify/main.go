// Command solidify consolidates two or more CSV/TSV (or xlsx) files that
// describe overlapping sets of records into one unified table.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
