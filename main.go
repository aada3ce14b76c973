package main

import "github.com/jwkuo/bobasim/cmd"

func main() {
	cmd.Execute()
}
