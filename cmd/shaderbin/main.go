package main

import "shaderbin/cmd"

func main() {
	cmd.Execute()
}
