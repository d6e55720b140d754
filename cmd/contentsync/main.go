// Command contentsync mirrors the content directory into PostgreSQL and
// checks content documents against their schemas.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
