package main

import "github.com/aleskard/sqlward/cmd"

func main() {
	cmd.Execute()
}
