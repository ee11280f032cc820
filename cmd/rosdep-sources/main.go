package main

import "rosdep-sources/internal/cli"

func main() {
	cli.Execute()
}
