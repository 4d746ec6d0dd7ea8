package main

import (
	"fmt"
	"time"

	"odontocare/internal/cli"

	"github.com/spf13/pflag"
)

func main() {
	userService := pflag.String("user-service", "http://localhost:8000", "URL del servicio de usuarios")
	appointmentService := pflag.String("appointment-service", "http://localhost:8001", "URL del servicio de citas")
	timeout := pflag.Duration("timeout", 10*time.Second, "Timeout de las peticiones HTTP")
	templatesDir := pflag.String("templates-dir", "csv_templates", "Directorio de templates CSV para carga masiva")
	pflag.Parse()

	client := cli.NewRestClient(*userService, *appointmentService, *timeout)

	fmt.Println()
	fmt.Println("OdontoCare - Cliente REST Simple")
	fmt.Println()
	fmt.Println("  Servicios configurados:")
	fmt.Printf("    - User Service:        %s\n", *userService)
	fmt.Printf("    - Appointment Service: %s\n", *appointmentService)
	fmt.Println()

	cli.NewMenu(client, *templatesDir).Run()
}
