package main

import "cardapio-server/cmd"

func main() {
	cmd.Execute()
}
