package main

import "github.com/ethanolivertroy/riskboard/cmd"

func main() {
	cmd.Execute()
}
