package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func step(name string) {
	color.Cyan("\n=== %s ===", name)
}

func check(resp *http.Response, body []byte, err error) map[string]interface{} {
	if err != nil {
		color.Red("FAIL: %v", err)
		os.Exit(1)
	}
	var parsed map[string]interface{}
	if jsonErr := json.Unmarshal(body, &parsed); jsonErr != nil {
		color.Red("FAIL: non-JSON response (%d): %s", resp.StatusCode, string(body))
		os.Exit(1)
	}
	prettyPrint(parsed)
	if resp.StatusCode >= 400 {
		color.Red("FAIL: status %d", resp.StatusCode)
		os.Exit(1)
	}
	color.Green("OK (%d)", resp.StatusCode)
	return parsed
}

// Walks the API end to end against a locally running server using the
// seeded admin login.
func main() {
	step("Login as admin")
	resp, body, err := sendRequest("POST", "/auth/login", "", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	parsed := check(resp, body, err)
	data := parsed["data"].(map[string]interface{})
	token := data["token"].(string)

	step("Get shopper context")
	resp, body, err = sendRequest("GET", "/context/", token, nil)
	check(resp, body, err)

	step("Raise stress, make it rain")
	resp, body, err = sendRequest("PATCH", "/context/", token, map[string]interface{}{
		"stress_level": 9,
		"weather":      "Rainy",
	})
	check(resp, body, err)

	step("Read aura")
	resp, body, err = sendRequest("GET", "/insights/aura", token, nil)
	check(resp, body, err)

	step("Predictions")
	resp, body, err = sendRequest("GET", "/insights/predictions", token, nil)
	check(resp, body, err)

	step("Browse products")
	resp, body, err = sendRequest("GET", "/products/?category=Sustainability", token, nil)
	check(resp, body, err)

	step("Add to cart")
	resp, body, err = sendRequest("POST", "/cart/items", token, map[string]string{
		"name": "Bamboo Toothbrush",
	})
	check(resp, body, err)

	step("Sustainability report")
	resp, body, err = sendRequest("GET", "/insights/sustainability", token, nil)
	check(resp, body, err)

	step("Checkout")
	resp, body, err = sendRequest("POST", "/cart/checkout", token, nil)
	check(resp, body, err)

	step("Voice command")
	resp, body, err = sendRequest("POST", "/assistant/voice", token, map[string]string{
		"command": "what's my aura today",
	})
	check(resp, body, err)

	step("Dashboard")
	resp, body, err = sendRequest("GET", "/insights/dashboard", token, nil)
	check(resp, body, err)

	color.Green("\nAll smoke checks passed.")
}
