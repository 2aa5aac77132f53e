package main

import "github.com/elijahnyp/smart_home/cmd"

func main() {
	cmd.Execute()
}
