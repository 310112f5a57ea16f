package main

import "github.com/AshrafGalibShaik/Universal-Document-Parser-Library/cmd"

func main() {
	cmd.Execute()
}
