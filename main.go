// Command pitchdeck generates the Café Point pitch decks in batch.
package main

func main() {
	Execute()
}
