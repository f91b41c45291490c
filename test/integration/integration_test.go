package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"
)

var (
	serverURL        = getEnv("SERVER_URL", "http://localhost:5000")
	testUserEmail    = fmt.Sprintf("test-%d@example.com", time.Now().UnixNano())
	testUserPassword = "testPassword123"
	authToken        string
	createdTaskID    string
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func TestMain(m *testing.M) {
	if os.Getenv("INTEGRATION_TEST") != "true" {
		fmt.Println("Skipping integration tests. Set INTEGRATION_TEST=true to run.")
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func authedRequest(t *testing.T, method, path string, payload interface{}) *http.Response {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, serverURL+path, body)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+authToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return resp
}

func TestHealthCheck(t *testing.T) {
	resp, err := http.Get(serverURL + "/health")
	if err != nil {
		t.Fatalf("health check failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
}

func TestUserRegistration(t *testing.T) {
	payload := map[string]string{
		"email":    testUserEmail,
		"password": testUserPassword,
		"name":     "Test User",
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(serverURL+"/api/auth/register", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("registration request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Errorf("expected status 201, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if token, ok := result["token"].(string); ok {
		authToken = token
	}
}

func TestUserLogin(t *testing.T) {
	payload := map[string]string{
		"email":    testUserEmail,
		"password": testUserPassword,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(serverURL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if token, ok := result["token"].(string); ok {
		authToken = token
	}

	if authToken == "" {
		t.Error("expected auth token in response")
	}
}

func TestUnauthenticatedRejected(t *testing.T) {
	resp, err := http.Get(serverURL + "/api/tasks")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", resp.StatusCode)
	}
}

func TestCreateTask(t *testing.T) {
	if authToken == "" {
		t.Skip("no auth token available")
	}

	resp := authedRequest(t, http.MethodPost, "/api/tasks", map[string]string{
		"title":       "Integration test task",
		"description": "created by the integration suite",
		"priority":    "high",
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.StatusCode)
	}

	var task map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if task["status"] != "todo" {
		t.Errorf("expected new task status todo, got %v", task["status"])
	}
	if id, ok := task["id"].(string); ok {
		createdTaskID = id
	}
	if createdTaskID == "" {
		t.Error("expected task id in response")
	}
}

func TestListTasks(t *testing.T) {
	if authToken == "" {
		t.Skip("no auth token available")
	}

	resp := authedRequest(t, http.MethodGet, "/api/tasks", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var tasks []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&tasks); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(tasks) == 0 {
		t.Error("expected at least one task")
	}
}

func TestCompleteTask(t *testing.T) {
	if createdTaskID == "" {
		t.Skip("no task available")
	}

	resp := authedRequest(t, http.MethodPut, "/api/tasks/"+createdTaskID, map[string]string{
		"status": "completed",
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var task map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if task["status"] != "completed" {
		t.Errorf("expected status completed, got %v", task["status"])
	}
}

func TestDeleteTask(t *testing.T) {
	if createdTaskID == "" {
		t.Skip("no task available")
	}

	resp := authedRequest(t, http.MethodDelete, "/api/tasks/"+createdTaskID, nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.StatusCode)
	}

	getResp := authedRequest(t, http.MethodGet, "/api/tasks/"+createdTaskID, nil)
	defer getResp.Body.Close()

	if getResp.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404 after delete, got %d", getResp.StatusCode)
	}
}

func TestProfile(t *testing.T) {
	if authToken == "" {
		t.Skip("no auth token available")
	}

	resp := authedRequest(t, http.MethodGet, "/api/user/profile", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	profile, ok := result["user"].(map[string]interface{})
	if !ok {
		t.Fatal("expected user object in response")
	}
	if profile["email"] != testUserEmail {
		t.Errorf("expected email %s, got %v", testUserEmail, profile["email"])
	}
}
