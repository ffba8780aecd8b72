package main

import "driftcity/internal/game"

func main() {
	game.RunDesktop()
}
