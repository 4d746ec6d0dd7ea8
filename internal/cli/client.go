package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// RestClient issues plain HTTP calls against both services. It performs no
// client-side validation: payloads go out as typed in and responses come back
// as raw JSON for display.
type RestClient struct {
	userServiceURL        string
	appointmentServiceURL string
	httpClient            *http.Client
	token                 string
}

func NewRestClient(userServiceURL, appointmentServiceURL string, timeout time.Duration) *RestClient {
	return &RestClient{
		userServiceURL:        userServiceURL,
		appointmentServiceURL: appointmentServiceURL,
		httpClient:            &http.Client{Timeout: timeout},
	}
}

// HasToken reports whether a login token is held.
func (c *RestClient) HasToken() bool {
	return c.token != ""
}

// ClearToken drops the held token without calling the service.
func (c *RestClient) ClearToken() {
	c.token = ""
}

func (c *RestClient) do(method, rawURL string, params url.Values, payload interface{}) (json.RawMessage, error) {
	if params != nil && len(params) > 0 {
		rawURL = rawURL + "?" + params.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, rawURL, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		raw = []byte(fmt.Sprintf(`{"status_code": %d}`, resp.StatusCode))
	}
	return json.RawMessage(raw), nil
}

// ---------- Auth ----------

func (c *RestClient) Login(username, password string) (json.RawMessage, error) {
	payload := map[string]string{"username": username, "password": password}
	raw, err := c.do(http.MethodPost, c.userServiceURL+"/auth/login", nil, payload)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Data.AccessToken != "" {
		c.token = envelope.Data.AccessToken
	}
	return raw, nil
}

func (c *RestClient) Register(data map[string]interface{}) (json.RawMessage, error) {
	return c.do(http.MethodPost, c.userServiceURL+"/auth/register", nil, data)
}

func (c *RestClient) Logout() (json.RawMessage, error) {
	raw, err := c.do(http.MethodPost, c.userServiceURL+"/auth/logout", nil, nil)
	if err == nil {
		c.token = ""
	}
	return raw, err
}

func (c *RestClient) VerifyToken() (json.RawMessage, error) {
	return c.do(http.MethodGet, c.userServiceURL+"/verify/token", nil, nil)
}

// ---------- Pacientes ----------

func (c *RestClient) ListPatients(params url.Values) (json.RawMessage, error) {
	return c.do(http.MethodGet, c.userServiceURL+"/admin/pacientes", params, nil)
}

func (c *RestClient) GetPatient(id int) (json.RawMessage, error) {
	return c.do(http.MethodGet, fmt.Sprintf("%s/admin/pacientes/%d", c.userServiceURL, id), nil, nil)
}

func (c *RestClient) CreatePatient(data map[string]interface{}) (json.RawMessage, error) {
	return c.do(http.MethodPost, c.userServiceURL+"/admin/pacientes", nil, data)
}

func (c *RestClient) UpdatePatient(id int, data map[string]interface{}) (json.RawMessage, error) {
	return c.do(http.MethodPut, fmt.Sprintf("%s/admin/pacientes/%d", c.userServiceURL, id), nil, data)
}

func (c *RestClient) DeletePatient(id int) (json.RawMessage, error) {
	return c.do(http.MethodDelete, fmt.Sprintf("%s/admin/pacientes/%d", c.userServiceURL, id), nil, nil)
}

// ---------- Doctores ----------

func (c *RestClient) ListDoctors(params url.Values) (json.RawMessage, error) {
	return c.do(http.MethodGet, c.userServiceURL+"/admin/doctores", params, nil)
}

func (c *RestClient) GetDoctor(id int) (json.RawMessage, error) {
	return c.do(http.MethodGet, fmt.Sprintf("%s/admin/doctores/%d", c.userServiceURL, id), nil, nil)
}

func (c *RestClient) CreateDoctor(data map[string]interface{}) (json.RawMessage, error) {
	return c.do(http.MethodPost, c.userServiceURL+"/admin/doctores", nil, data)
}

func (c *RestClient) UpdateDoctor(id int, data map[string]interface{}) (json.RawMessage, error) {
	return c.do(http.MethodPut, fmt.Sprintf("%s/admin/doctores/%d", c.userServiceURL, id), nil, data)
}

func (c *RestClient) DeleteDoctor(id int) (json.RawMessage, error) {
	return c.do(http.MethodDelete, fmt.Sprintf("%s/admin/doctores/%d", c.userServiceURL, id), nil, nil)
}

// ---------- Centros ----------

func (c *RestClient) ListCenters(params url.Values) (json.RawMessage, error) {
	return c.do(http.MethodGet, c.userServiceURL+"/admin/centros", params, nil)
}

func (c *RestClient) GetCenter(id int) (json.RawMessage, error) {
	return c.do(http.MethodGet, fmt.Sprintf("%s/admin/centros/%d", c.userServiceURL, id), nil, nil)
}

func (c *RestClient) CreateCenter(data map[string]interface{}) (json.RawMessage, error) {
	return c.do(http.MethodPost, c.userServiceURL+"/admin/centros", nil, data)
}

func (c *RestClient) UpdateCenter(id int, data map[string]interface{}) (json.RawMessage, error) {
	return c.do(http.MethodPut, fmt.Sprintf("%s/admin/centros/%d", c.userServiceURL, id), nil, data)
}

func (c *RestClient) DeleteCenter(id int) (json.RawMessage, error) {
	return c.do(http.MethodDelete, fmt.Sprintf("%s/admin/centros/%d", c.userServiceURL, id), nil, nil)
}

// ---------- Citas ----------

func (c *RestClient) ListAppointments(params url.Values) (json.RawMessage, error) {
	return c.do(http.MethodGet, c.appointmentServiceURL+"/citas", params, nil)
}

func (c *RestClient) GetAppointment(id int) (json.RawMessage, error) {
	return c.do(http.MethodGet, fmt.Sprintf("%s/citas/%d", c.appointmentServiceURL, id), nil, nil)
}

func (c *RestClient) CreateAppointment(data map[string]interface{}) (json.RawMessage, error) {
	return c.do(http.MethodPost, c.appointmentServiceURL+"/citas", nil, data)
}

func (c *RestClient) CancelAppointment(id int) (json.RawMessage, error) {
	return c.do(http.MethodPut, fmt.Sprintf("%s/citas/%d", c.appointmentServiceURL, id), nil, nil)
}
