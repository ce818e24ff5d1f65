// graybmp generates grayscale BMP test images
package main

import (
	"os"

	"github.com/anas-shakeel/graybmp/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
