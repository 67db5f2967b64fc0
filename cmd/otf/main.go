package main

import "github.com/OpenTraceLab/OpenTraceFPGA/cmd/otf/cmd"

func main() {
	cmd.Execute()
}
