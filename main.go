package main

import "github.com/olivierh59500/aichair/cmd"

func main() {
	cmd.Execute()
}
