package main

import "recon-manager/cmd"

func main() {
	cmd.Execute()
}
