package main

import "availability-watcher/cmd"

func main() {
	cmd.Execute()
}
