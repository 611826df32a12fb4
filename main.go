package main

import "github.com/invierte-coyoacan/invest-backend-go/cmd"

func main() {
	cmd.Execute()
}
