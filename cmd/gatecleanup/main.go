package main

import "github.com/OpenTraceLab/gatecleanup/cmd/gatecleanup/cmd"

func main() {
	cmd.Execute()
}
