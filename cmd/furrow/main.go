// Command furrow browses farm work listings.
package main

import (
	"os"
)

func main() {
	os.Exit(execute())
}
