package main

import (
	"github.com/Ryan56h/waterReminder/cmd"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for WATERPRO_* overrides; missing file is fine.
	_ = godotenv.Load()

	cmd.Execute()
}
