package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Menu drives the interactive terminal session.
type Menu struct {
	client       *RestClient
	reader       *bufio.Reader
	templatesDir string
}

func NewMenu(client *RestClient, templatesDir string) *Menu {
	return &Menu{
		client:       client,
		reader:       bufio.NewReader(os.Stdin),
		templatesDir: templatesDir,
	}
}

// Run loops over the main menu until the user exits or stdin closes.
func (m *Menu) Run() {
	for {
		m.printMainMenu()
		choice, ok := m.prompt("\nSelecciona una opción", "0")
		if !ok || choice == "0" {
			fmt.Printf("\n%sGracias por usar OdontoCare!%s\n\n", colorGreen, colorReset)
			return
		}

		if !m.client.HasToken() {
			switch choice {
			case "1":
				m.registerUser()
			case "2":
				m.login()
			default:
				printError("Opción inválida. Por favor, selecciona una opción válida.")
			}
			continue
		}

		switch choice {
		case "1":
			m.verifyToken()
		case "2":
			m.logout()
		case "3":
			m.menuPatients()
		case "4":
			m.menuDoctors()
		case "5":
			m.menuCenters()
		case "6":
			m.menuAppointments()
		case "7":
			m.menuBulkLoad()
		default:
			printError("Opción inválida. Por favor, selecciona una opción válida.")
		}
	}
}

func (m *Menu) printMainMenu() {
	printHeader("OdontoCare - Cliente REST")

	if m.client.HasToken() {
		fmt.Printf("  Estado: %sAutenticado%s\n\n", colorGreen, colorReset)
		printItem("1", "Verificar token actual")
		printItem("2", "Cerrar sesión")
		fmt.Printf("\n%s  Gestión de Entidades%s\n", colorBlue+colorBold, colorReset)
		printItem("3", "Gestionar Pacientes")
		printItem("4", "Gestionar Doctores")
		printItem("5", "Gestionar Centros")
		printItem("6", "Gestionar Citas")
		fmt.Printf("\n%s  Operaciones de Datos%s\n", colorBlue+colorBold, colorReset)
		printItem("7", "Carga Masiva desde CSV")
	} else {
		fmt.Printf("  Estado: %sNo autenticado%s\n\n", colorGray, colorReset)
		printItem("1", "Registrarse nuevo usuario")
		printItem("2", "Iniciar sesión")
	}
	fmt.Printf("\n  %s0) Salir%s\n", colorGray, colorReset)
}

// ---------- Input helpers ----------

// prompt reads a trimmed line; ok is false when stdin is closed.
func (m *Menu) prompt(message, defaultValue string) (string, bool) {
	if defaultValue != "" {
		fmt.Printf("%s [%s]: ", message, defaultValue)
	} else {
		fmt.Printf("%s: ", message)
	}
	line, err := m.reader.ReadString('\n')
	if err != nil {
		return defaultValue, false
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue, true
	}
	return line, true
}

func (m *Menu) promptSecret(message string) string {
	fmt.Printf("%s: ", message)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		// Not a terminal (piped input); fall back to a plain read.
		line, _ := m.prompt("", "")
		return line
	}
	return string(raw)
}

// promptInt keeps asking until it gets a valid integer or an empty answer.
// ok is false when the user left it empty.
func (m *Menu) promptInt(message, defaultValue string) (int, bool) {
	for {
		val, _ := m.prompt(message, defaultValue)
		if val == "" {
			return 0, false
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			fmt.Println("Por favor, introduce un número válido.")
			continue
		}
		return n, true
	}
}

func (m *Menu) confirm(message string) bool {
	answer, _ := m.prompt(message+" (s/N)", "n")
	switch strings.ToLower(answer) {
	case "s", "y", "si", "sí":
		return true
	}
	return false
}

func (m *Menu) showResponse(raw json.RawMessage, err error) {
	fmt.Println("\n[RESPONSE]")
	if err != nil {
		printError(err.Error())
		return
	}
	printJSON(raw)
}

// ---------- Auth ----------

func (m *Menu) registerUser() {
	fmt.Printf("\n%sRegistro de Nuevo Usuario%s\n\n", colorBlue+colorBold, colorReset)
	data := map[string]interface{}{}
	data["username"], _ = m.prompt("Username", "")
	data["password"] = m.promptSecret("Password")
	if rol, _ := m.prompt("Rol (opcional, default: paciente)", ""); rol != "" {
		data["rol"] = rol
	}

	fmt.Println("\n[REQUEST] POST /auth/register")
	fmt.Println("Payload:")
	printPayload(data)
	m.showResponse(m.client.Register(data))
}

func (m *Menu) login() {
	fmt.Printf("\n%sIniciar Sesión%s\n\n", colorBlue+colorBold, colorReset)
	username, _ := m.prompt("Username", "")
	password := m.promptSecret("Password")

	fmt.Println("\n[REQUEST] POST /auth/login")
	m.showResponse(m.client.Login(username, password))
	if m.client.HasToken() {
		printSuccess("Bienvenido, " + username)
	}
}

func (m *Menu) verifyToken() {
	fmt.Printf("\n%sVerificar Token%s\n\n", colorBlue+colorBold, colorReset)
	fmt.Println("[REQUEST] GET /verify/token")
	m.showResponse(m.client.VerifyToken())
}

func (m *Menu) logout() {
	fmt.Println("\n[REQUEST] POST /auth/logout")
	m.showResponse(m.client.Logout())
	m.client.ClearToken()
	printWarning("Sesión cerrada correctamente")
}

// ---------- Pacientes ----------

func (m *Menu) menuPatients() {
	for {
		printSection("Gestión de Pacientes")
		printItem("1", "Listar todos los pacientes")
		printItem("2", "Buscar paciente por ID")
		printItem("3", "Registrar nuevo paciente")
		printItem("4", "Actualizar datos de paciente")
		printItem("5", "Eliminar paciente")
		fmt.Printf("\n  %s0) Volver%s\n", colorGray, colorReset)

		choice, ok := m.prompt("Opción", "1")
		if !ok {
			return
		}

		switch choice {
		case "1":
			params := url.Values{}
			if estado, _ := m.prompt("estado (ACTIVO/INACTIVO, opcional)", ""); estado != "" {
				params.Set("estado", estado)
			}
			if nombre, _ := m.prompt("filtro nombre (opcional)", ""); nombre != "" {
				params.Set("nombre", nombre)
			}
			if page, ok := m.promptInt("page", "1"); ok {
				params.Set("page", strconv.Itoa(page))
			}
			if perPage, ok := m.promptInt("per_page", "10"); ok {
				params.Set("per_page", strconv.Itoa(perPage))
			}
			fmt.Println("\n[REQUEST] GET /admin/pacientes")
			fmt.Printf("Params: %v\n", params)
			m.showResponse(m.client.ListPatients(params))

		case "2":
			id, ok := m.promptInt("paciente_id", "")
			if !ok {
				continue
			}
			fmt.Printf("\n[REQUEST] GET /admin/pacientes/%d\n", id)
			m.showResponse(m.client.GetPatient(id))

		case "3":
			fmt.Println("\nIngresa los datos del paciente:")
			data := map[string]interface{}{}
			data["nombre"], _ = m.prompt("nombre", "")
			if telefono, _ := m.prompt("telefono (opcional)", ""); telefono != "" {
				data["telefono"] = telefono
			}
			if estado, _ := m.prompt("estado (ACTIVO/INACTIVO opcional)", ""); estado != "" {
				data["estado"] = estado
			}
			fmt.Println("\n[REQUEST] POST /admin/pacientes")
			fmt.Println("Payload:")
			printPayload(data)
			m.showResponse(m.client.CreatePatient(data))

		case "4":
			id, ok := m.promptInt("paciente_id", "")
			if !ok {
				continue
			}
			fmt.Println("\nIngresa los datos a actualizar (deja vacío para mantener):")
			data := map[string]interface{}{}
			if nombre, _ := m.prompt("nombre", ""); nombre != "" {
				data["nombre"] = nombre
			}
			if telefono, _ := m.prompt("telefono (opcional)", ""); telefono != "" {
				data["telefono"] = telefono
			}
			if estado, _ := m.prompt("estado (ACTIVO/INACTIVO opcional)", ""); estado != "" {
				data["estado"] = estado
			}
			if len(data) == 0 {
				fmt.Println("No se especificaron cambios.")
				continue
			}
			fmt.Printf("\n[REQUEST] PUT /admin/pacientes/%d\n", id)
			fmt.Println("Payload:")
			printPayload(data)
			m.showResponse(m.client.UpdatePatient(id, data))

		case "5":
			id, ok := m.promptInt("paciente_id", "")
			if !ok {
				continue
			}
			if m.confirm(fmt.Sprintf("¿Eliminar paciente %d?", id)) {
				fmt.Printf("\n[REQUEST] DELETE /admin/pacientes/%d\n", id)
				m.showResponse(m.client.DeletePatient(id))
			} else {
				fmt.Println("Cancelado.")
			}

		case "0":
			return

		default:
			printError("Opción inválida.")
		}
	}
}

// ---------- Doctores ----------

func (m *Menu) menuDoctors() {
	for {
		printSection("Gestión de Doctores")
		printItem("1", "Listar todos los doctores")
		printItem("2", "Buscar doctor por ID")
		printItem("3", "Registrar nuevo doctor")
		printItem("4", "Actualizar datos de doctor")
		printItem("5", "Eliminar doctor")
		fmt.Printf("\n  %s0) Volver%s\n", colorGray, colorReset)

		choice, ok := m.prompt("Opción", "1")
		if !ok {
			return
		}

		switch choice {
		case "1":
			params := url.Values{}
			if estado, _ := m.prompt("estado (ACTIVO/INACTIVO, opcional)", ""); estado != "" {
				params.Set("estado", estado)
			}
			if especialidad, _ := m.prompt("filtro especialidad (opcional)", ""); especialidad != "" {
				params.Set("especialidad", especialidad)
			}
			if page, ok := m.promptInt("page", "1"); ok {
				params.Set("page", strconv.Itoa(page))
			}
			if perPage, ok := m.promptInt("per_page", "10"); ok {
				params.Set("per_page", strconv.Itoa(perPage))
			}
			fmt.Println("\n[REQUEST] GET /admin/doctores")
			fmt.Printf("Params: %v\n", params)
			m.showResponse(m.client.ListDoctors(params))

		case "2":
			id, ok := m.promptInt("doctor_id", "")
			if !ok {
				continue
			}
			fmt.Printf("\n[REQUEST] GET /admin/doctores/%d\n", id)
			m.showResponse(m.client.GetDoctor(id))

		case "3":
			fmt.Println("\nIngresa los datos del doctor:")
			data := map[string]interface{}{}
			data["nombre"], _ = m.prompt("nombre", "")
			if especialidad, _ := m.prompt("especialidad (opcional)", ""); especialidad != "" {
				data["especialidad"] = especialidad
			}
			if estado, _ := m.prompt("estado (ACTIVO/INACTIVO opcional)", ""); estado != "" {
				data["estado"] = estado
			}
			fmt.Println("\n[REQUEST] POST /admin/doctores")
			fmt.Println("Payload:")
			printPayload(data)
			m.showResponse(m.client.CreateDoctor(data))

		case "4":
			id, ok := m.promptInt("doctor_id", "")
			if !ok {
				continue
			}
			fmt.Println("\nIngresa los datos a actualizar (deja vacío para mantener):")
			data := map[string]interface{}{}
			if nombre, _ := m.prompt("nombre", ""); nombre != "" {
				data["nombre"] = nombre
			}
			if especialidad, _ := m.prompt("especialidad (opcional)", ""); especialidad != "" {
				data["especialidad"] = especialidad
			}
			if estado, _ := m.prompt("estado (ACTIVO/INACTIVO opcional)", ""); estado != "" {
				data["estado"] = estado
			}
			if len(data) == 0 {
				fmt.Println("No se especificaron cambios.")
				continue
			}
			fmt.Printf("\n[REQUEST] PUT /admin/doctores/%d\n", id)
			fmt.Println("Payload:")
			printPayload(data)
			m.showResponse(m.client.UpdateDoctor(id, data))

		case "5":
			id, ok := m.promptInt("doctor_id", "")
			if !ok {
				continue
			}
			if m.confirm(fmt.Sprintf("¿Eliminar doctor %d?", id)) {
				fmt.Printf("\n[REQUEST] DELETE /admin/doctores/%d\n", id)
				m.showResponse(m.client.DeleteDoctor(id))
			} else {
				fmt.Println("Cancelado.")
			}

		case "0":
			return

		default:
			printError("Opción inválida.")
		}
	}
}

// ---------- Centros ----------

func (m *Menu) menuCenters() {
	for {
		printSection("Gestión de Centros Médicos")
		printItem("1", "Listar todos los centros")
		printItem("2", "Buscar centro por ID")
		printItem("3", "Registrar nuevo centro")
		printItem("4", "Actualizar datos de centro")
		printItem("5", "Eliminar centro")
		fmt.Printf("\n  %s0) Volver%s\n", colorGray, colorReset)

		choice, ok := m.prompt("Opción", "1")
		if !ok {
			return
		}

		switch choice {
		case "1":
			params := url.Values{}
			if estado, _ := m.prompt("estado (ACTIVO/INACTIVO, opcional)", ""); estado != "" {
				params.Set("estado", estado)
			}
			if page, ok := m.promptInt("page", "1"); ok {
				params.Set("page", strconv.Itoa(page))
			}
			if perPage, ok := m.promptInt("per_page", "10"); ok {
				params.Set("per_page", strconv.Itoa(perPage))
			}
			fmt.Println("\n[REQUEST] GET /admin/centros")
			fmt.Printf("Params: %v\n", params)
			m.showResponse(m.client.ListCenters(params))

		case "2":
			id, ok := m.promptInt("centro_id", "")
			if !ok {
				continue
			}
			fmt.Printf("\n[REQUEST] GET /admin/centros/%d\n", id)
			m.showResponse(m.client.GetCenter(id))

		case "3":
			fmt.Println("\nIngresa los datos del centro:")
			data := map[string]interface{}{}
			data["nombre"], _ = m.prompt("nombre", "")
			if direccion, _ := m.prompt("direccion (opcional)", ""); direccion != "" {
				data["direccion"] = direccion
			}
			if estado, _ := m.prompt("estado (ACTIVO/INACTIVO opcional)", ""); estado != "" {
				data["estado"] = estado
			}
			fmt.Println("\n[REQUEST] POST /admin/centros")
			fmt.Println("Payload:")
			printPayload(data)
			m.showResponse(m.client.CreateCenter(data))

		case "4":
			id, ok := m.promptInt("centro_id", "")
			if !ok {
				continue
			}
			fmt.Println("\nIngresa los datos a actualizar (deja vacío para mantener):")
			data := map[string]interface{}{}
			if nombre, _ := m.prompt("nombre", ""); nombre != "" {
				data["nombre"] = nombre
			}
			if direccion, _ := m.prompt("direccion (opcional)", ""); direccion != "" {
				data["direccion"] = direccion
			}
			if estado, _ := m.prompt("estado (ACTIVO/INACTIVO opcional)", ""); estado != "" {
				data["estado"] = estado
			}
			if len(data) == 0 {
				fmt.Println("No se especificaron cambios.")
				continue
			}
			fmt.Printf("\n[REQUEST] PUT /admin/centros/%d\n", id)
			fmt.Println("Payload:")
			printPayload(data)
			m.showResponse(m.client.UpdateCenter(id, data))

		case "5":
			id, ok := m.promptInt("centro_id", "")
			if !ok {
				continue
			}
			if m.confirm(fmt.Sprintf("¿Eliminar centro %d?", id)) {
				fmt.Printf("\n[REQUEST] DELETE /admin/centros/%d\n", id)
				m.showResponse(m.client.DeleteCenter(id))
			} else {
				fmt.Println("Cancelado.")
			}

		case "0":
			return

		default:
			printError("Opción inválida.")
		}
	}
}

// ---------- Citas ----------

func (m *Menu) menuAppointments() {
	for {
		printSection("Gestión de Citas")
		printItem("1", "Listar todas las citas")
		printItem("2", "Buscar cita por ID")
		printItem("3", "Agendar nueva cita")
		printItem("4", "Cancelar cita existente")
		fmt.Printf("\n  %s0) Volver%s\n", colorGray, colorReset)

		choice, ok := m.prompt("Opción", "1")
		if !ok {
			return
		}

		switch choice {
		case "1":
			params := url.Values{}
			if fechaInicio, _ := m.prompt("fecha_inicio (YYYY-MM-DD, opcional)", ""); fechaInicio != "" {
				params.Set("fecha_inicio", fechaInicio)
			}
			if fechaFin, _ := m.prompt("fecha_fin (YYYY-MM-DD, opcional)", ""); fechaFin != "" {
				params.Set("fecha_fin", fechaFin)
			}
			if idDoctor, ok := m.promptInt("id_doctor (opcional)", ""); ok {
				params.Set("id_doctor", strconv.Itoa(idDoctor))
			}
			if idCentro, ok := m.promptInt("id_centro (opcional)", ""); ok {
				params.Set("id_centro", strconv.Itoa(idCentro))
			}
			if estado, _ := m.prompt("estado (opcional)", ""); estado != "" {
				params.Set("estado", estado)
			}
			fmt.Println("\n[REQUEST] GET /citas")
			fmt.Printf("Params: %v\n", params)
			m.showResponse(m.client.ListAppointments(params))

		case "2":
			id, ok := m.promptInt("cita_id", "")
			if !ok {
				continue
			}
			fmt.Printf("\n[REQUEST] GET /citas/%d\n", id)
			m.showResponse(m.client.GetAppointment(id))

		case "3":
			fmt.Println("\nIngresa los datos de la cita:")
			data := map[string]interface{}{}
			data["fecha"], _ = m.prompt("fecha (ISO 8601, ej: 2026-01-20T10:00:00)", "")
			data["motivo"], _ = m.prompt("motivo", "")
			if id, ok := m.promptInt("id_paciente", ""); ok {
				data["id_paciente"] = id
			}
			if id, ok := m.promptInt("id_doctor", ""); ok {
				data["id_doctor"] = id
			}
			if id, ok := m.promptInt("id_centro", ""); ok {
				data["id_centro"] = id
			}
			fmt.Println("\n[REQUEST] POST /citas")
			fmt.Println("Payload:")
			printPayload(data)
			m.showResponse(m.client.CreateAppointment(data))

		case "4":
			id, ok := m.promptInt("cita_id", "")
			if !ok {
				continue
			}
			if m.confirm(fmt.Sprintf("¿Cancelar cita %d?", id)) {
				fmt.Printf("\n[REQUEST] PUT /citas/%d\n", id)
				m.showResponse(m.client.CancelAppointment(id))
			} else {
				fmt.Println("Cancelado.")
			}

		case "0":
			return

		default:
			printError("Opción inválida.")
		}
	}
}
