package main

import (
	"log"

	"github.com/architeacher/svc-order-events/internal/config"
	"github.com/architeacher/svc-order-events/internal/runtime"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("skipping .env: %v", err)
	}

	runtime.NewPublisher().Run()
}
