package main

import (
	"log"

	"github.com/Veer-w/Online-Chatbot-for-ticketing/internal/app"
	"github.com/Veer-w/Online-Chatbot-for-ticketing/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
