package main

import "github.com/sparrowkv/sparrow/cmd"

func main() {
	cmd.Execute()
}
