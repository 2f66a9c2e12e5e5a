package main

import "gamestore_backend/internal/app"

func main() {
	app.Run()
}
