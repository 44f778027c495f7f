// Command loan-sim is the terminal front end of the loan approval simulator.
package main

import "loan-approval-simulator/internal/cli"

func main() {
	cli.Execute()
}
