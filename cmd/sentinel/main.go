package main

import "github.com/amontanana/safety-sentinel/cmd/sentinel/cmd"

func main() {
	cmd.Execute()
}
