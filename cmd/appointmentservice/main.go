package main

import (
	"odontocare/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.NewAppointmentService()
	if err != nil {
		logrus.Fatalf("Failed to initialize appointment service: %v", err)
	}

	app.Run()
}
