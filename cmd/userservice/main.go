package main

import (
	"odontocare/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.NewUserService()
	if err != nil {
		logrus.Fatalf("Failed to initialize user service: %v", err)
	}

	app.Run()
}
