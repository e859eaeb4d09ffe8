package main

import "github.com/Justineneema/cropctl/cmd/cropctl/cmd"

func main() {
	cmd.Execute()
}
