package main

import "github.com/haproxy-tools/matrixgen/cmd"

func main() {
	cmd.Execute()
}
