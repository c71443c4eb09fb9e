// Command premium_deck writes the premium Café Point deck into the working directory.
package main

import (
	"fmt"
	"os"

	"pitchdeck/decks"
	"pitchdeck/export"
)

func main() {
	entry, _ := decks.Lookup("premium")
	if _, err := entry.Generate(export.NewPPTExportService(), entry.Theme, "."); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(entry.Success)
}
