package main

import "github.com/jja725/ruxio/cmd/ruxio/cmd"

func main() {
	cmd.Execute()
}
