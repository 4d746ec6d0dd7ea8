package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// readCSVRows reads a CSV with a header row and returns one map per data row.
// Empty cells are omitted from the map.
func readCSVRows(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := map[string]string{}
		for i, key := range header {
			if i < len(record) && record[i] != "" {
				row[strings.TrimSpace(key)] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

type bulkLoader struct {
	name     string
	endpoint string
	build    func(row map[string]string) (map[string]interface{}, error)
	send     func(data map[string]interface{}) (json.RawMessage, error)
}

// run pushes every row through the endpoint, printing per-row results and a
// final summary. Row numbers start at 2, matching the line in the file.
func (l *bulkLoader) run(csvPath string) {
	fmt.Printf("\n[CSV] Cargando %s desde: %s\n", l.name, csvPath)
	rows, err := readCSVRows(csvPath)
	if err != nil {
		printError(err.Error())
		return
	}

	ok, failed := 0, 0
	for i, row := range rows {
		line := i + 2
		data, err := l.build(row)
		if err != nil {
			fmt.Printf("\n[ERROR][L%d] %v\n", line, err)
			failed++
			continue
		}

		fmt.Printf("\n[REQUEST] POST %s [L%d]\n", l.endpoint, line)
		fmt.Println("Payload:")
		printPayload(data)

		result, err := l.send(data)
		if err != nil {
			fmt.Printf("\n[ERROR][L%d] %v\n", line, err)
			failed++
			continue
		}
		fmt.Println("\n[RESPONSE]")
		printJSON(result)
		ok++
	}

	label := strings.ToUpper(l.name[:1]) + l.name[1:]
	fmt.Printf("\n[RESUMEN] %s: OK=%d, Fallidos=%d\n", label, ok, failed)
}

func copyFields(row map[string]string, required []string, optional []string) (map[string]interface{}, error) {
	data := map[string]interface{}{}
	for _, key := range required {
		val, present := row[key]
		if !present {
			return nil, fmt.Errorf("falta la columna requerida %q", key)
		}
		data[key] = val
	}
	for _, key := range optional {
		if val, present := row[key]; present {
			data[key] = val
		}
	}
	return data, nil
}

func (m *Menu) bulkLoaders() map[string]*bulkLoader {
	return map[string]*bulkLoader{
		"1": {
			name:     "usuarios",
			endpoint: "/auth/register",
			build: func(row map[string]string) (map[string]interface{}, error) {
				return copyFields(row, []string{"username", "password"}, []string{"rol"})
			},
			send: m.client.Register,
		},
		"2": {
			name:     "pacientes",
			endpoint: "/admin/pacientes",
			build: func(row map[string]string) (map[string]interface{}, error) {
				return copyFields(row, []string{"nombre"}, []string{"telefono", "estado"})
			},
			send: m.client.CreatePatient,
		},
		"3": {
			name:     "doctores",
			endpoint: "/admin/doctores",
			build: func(row map[string]string) (map[string]interface{}, error) {
				return copyFields(row, []string{"nombre"}, []string{"especialidad", "estado"})
			},
			send: m.client.CreateDoctor,
		},
		"4": {
			name:     "centros",
			endpoint: "/admin/centros",
			build: func(row map[string]string) (map[string]interface{}, error) {
				return copyFields(row, []string{"nombre"}, []string{"direccion", "estado"})
			},
			send: m.client.CreateCenter,
		},
		"5": {
			name:     "citas",
			endpoint: "/citas",
			build: func(row map[string]string) (map[string]interface{}, error) {
				data, err := copyFields(row, []string{"fecha", "motivo"}, nil)
				if err != nil {
					return nil, err
				}
				for _, key := range []string{"id_paciente", "id_doctor", "id_centro"} {
					val, present := row[key]
					if !present {
						return nil, fmt.Errorf("falta la columna requerida %q", key)
					}
					n, err := strconv.Atoi(val)
					if err != nil {
						return nil, fmt.Errorf("%s inválido: %q", key, val)
					}
					data[key] = n
				}
				return data, nil
			},
			send: m.client.CreateAppointment,
		},
	}
}

func (m *Menu) listTemplates() []string {
	entries, err := os.ReadDir(m.templatesDir)
	if err != nil {
		return nil
	}
	var templates []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".csv") {
			templates = append(templates, entry.Name())
		}
	}
	sort.Strings(templates)
	return templates
}

func (m *Menu) menuBulkLoad() {
	printSection("Carga Masiva desde CSV")

	fmt.Printf("\n%sDirectorio de templates:%s %s/\n", colorBlue, colorReset, m.templatesDir)
	fmt.Printf("%sArchivos disponibles:%s\n", colorGray, colorReset)
	templates := m.listTemplates()
	for _, name := range templates {
		fmt.Printf("    %s[CSV]%s %s\n", colorGreen, colorReset, name)
	}
	if len(templates) == 0 {
		fmt.Printf("    %s  (No se encontraron archivos CSV en templates)%s\n", colorGray, colorReset)
	}

	fmt.Printf("\n%sIngresa la ruta del archivo CSV (o presiona Enter para ver templates):%s\n", colorBlue, colorReset)
	csvPath, _ := m.prompt("Ruta", "")

	if csvPath == "" {
		fmt.Printf("\n%sTemplates disponibles:%s\n", colorBlue, colorReset)
		for i, name := range templates {
			printItem(strconv.Itoa(i+1), name)
		}
		fmt.Printf("\n  %s0) Ingresar ruta personalizada%s\n", colorGray, colorReset)
		choice, _ := m.prompt("Selecciona un template", "0")

		if choice == "0" {
			csvPath, _ = m.prompt("Ruta del archivo CSV", "")
		} else if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(templates) {
			csvPath = filepath.Join(m.templatesDir, templates[n-1])
		} else {
			printError("Opción inválida.")
			return
		}
	}

	if _, err := os.Stat(csvPath); err != nil {
		printError("El archivo no existe: " + csvPath)
		return
	}

	fmt.Printf("\n%sTipo de carga:%s\n", colorBlue, colorReset)
	printItem("1", "Usuarios (POST /auth/register)")
	printItem("2", "Pacientes (POST /admin/pacientes)")
	printItem("3", "Doctores (POST /admin/doctores)")
	printItem("4", "Centros (POST /admin/centros)")
	printItem("5", "Citas (POST /citas)")
	fmt.Printf("\n  %s0) Cancelar%s\n", colorGray, colorReset)

	choice, _ := m.prompt("Opción", "1")
	if choice == "0" {
		printWarning("Operación cancelada por el usuario.")
		return
	}

	loader, found := m.bulkLoaders()[choice]
	if !found {
		fmt.Println("Opción inválida.")
		return
	}
	loader.run(csvPath)
}
