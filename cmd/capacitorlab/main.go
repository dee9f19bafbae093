package main

import "capacitorlab/cmd/capacitorlab/cmd"

func main() {
	cmd.Execute()
}
