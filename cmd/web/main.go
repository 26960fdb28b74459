package main

import "dogwalking_backend/internal/app"

func main() {
	app.Run()
}
