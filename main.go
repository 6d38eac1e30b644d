package main

import "srbrowser/cmd"

func main() {
	cmd.Execute()
}
