package main

import (
	"os"

	"github.com/GoJournal-Admin/GoJournal-Admin/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
