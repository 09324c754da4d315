package main

import "github.com/khrees2412/autodoc/cmd"

func main() {
	cmd.Execute()
}
