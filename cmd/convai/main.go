package main

import (
	"convai/cmd/convai/cmd"

	// Import providers to register them
	_ "convai/internal/app/speech/gemini"
	_ "convai/internal/app/speech/google"
	_ "convai/internal/app/speech/openai"
)

func main() {
	cmd.Execute()
}
