package main

import "github.com/VladimirZhdanov/university-records/cmd"

func main() {
	cmd.Execute()
}
