package main

import "ecobuddy/cmd/eco/root"

func main() {
	root.Execute()
}
