package main

import "quillpad/cmd"

func main() {
	cmd.Execute()
}
