package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/wekesa540/school_portal/handlers"
	"github.com/wekesa540/school_portal/routes"
	"github.com/wekesa540/school_portal/store"
)

func newTestApp(st store.Store) *fiber.App {
	app := fiber.New()
	h := handlers.New(st)
	routes.PublicRoutes(app, h)
	routes.AuthRoutes(app, h)
	routes.OrderRoutes(app, h)
	routes.PayoutRoutes(app, h)
	return app
}

// request performs a JSON request against the app and returns the status code
// and raw response body.
func request(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return resp.StatusCode, raw
}

func decode(t *testing.T, raw []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("decode response %q: %v", raw, err)
	}
}

// signupSchool registers a school through the API and returns its id.
func signupSchool(t *testing.T, app *fiber.App, name, email, password string) string {
	t.Helper()

	status, raw := request(t, app, "POST", "/api/auth/signup", map[string]any{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if status != fiber.StatusOK {
		t.Fatalf("signup returned %d: %s", status, raw)
	}

	var resp struct {
		SchoolID string `json:"school_id"`
	}
	decode(t, raw, &resp)
	if resp.SchoolID == "" {
		t.Fatal("signup returned empty school_id")
	}
	return resp.SchoolID
}
