package main

import "github.com/pmoretti/easyscore/cmd"

func main() {
	cmd.Execute()
}
