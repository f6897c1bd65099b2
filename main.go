package main

import "github.com/CCBR/dme-metadata-generator/cmd"

func main() {
	cmd.Execute()
}
