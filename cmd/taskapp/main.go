package main

import "github.com/cleitonmarx/symbiont-ai-taskapp/internal/app"

func main() {
	err := app.NewTaskApp().Run()
	if err != nil {
		panic(err)
	}
}
