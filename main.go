package main

import "github.com/pri1712/github-summary/cmd"

func main() {
	cmd.Execute()
}
