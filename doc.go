/*
Package gridgen generates printable pattern paper as vector documents: square
grids, dot grids, ruled lines, hexagonal and isometric grids, laid out on a US
Letter page which can be split into panels for folding or cutting into a booklet.

The package provides a command line interface, supporting various flags for the
pattern geometry, the page layout and the output format. To check the supported commands type:

	$ gridgen --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"os"

		gridgen "github.com/Icodextrin/grid-gen"
	)

	func main() {
		p := &gridgen.Processor{
			// Initialize struct variables
		}

		if err := p.Process(os.Stdout); err != nil {
			fmt.Printf("Error generating the page: %s", err.Error())
		}
	}
*/
package gridgen
