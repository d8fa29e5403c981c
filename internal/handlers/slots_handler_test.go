package handlers_test

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-slot-loader/internal/config"
	"github.com/BruksfildServices01/barber-slot-loader/internal/httperr"
	infraRepo "github.com/BruksfildServices01/barber-slot-loader/internal/infra/repository"
	"github.com/BruksfildServices01/barber-slot-loader/internal/requestid"
	"github.com/BruksfildServices01/barber-slot-loader/internal/routes"
)

func newServer(t *testing.T, shape string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, err := infraRepo.ParseBooked("3@2999-05-10@10:00")
	if err != nil {
		t.Fatalf("ParseBooked: %v", err)
	}
	cfg := &config.Config{
		ResponseShape: shape,
		DayGrid:       []string{"09:00", "10:00", "11:00"},
		Timezone:      "UTC",
	}

	r := gin.New()
	routes.RegisterRoutes(r, repo, cfg)
	return r
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestAvailableWrapped(t *testing.T) {
	w := get(newServer(t, config.ShapeWrapped), "/slots?barber_id=3&date=2999-05-10")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body)
	}

	var body struct {
		Slots []string `json:"slots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(body.Slots, []string{"09:00", "11:00"}) {
		t.Fatalf("slots = %v", body.Slots)
	}
}

func TestAvailableBare(t *testing.T) {
	w := get(newServer(t, config.ShapeBare), "/slots?barber_id=4&date=2999-05-10")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var list []string
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(list, []string{"09:00", "10:00", "11:00"}) {
		t.Fatalf("list = %v", list)
	}
}

func TestAvailablePastDateIsEmptyList(t *testing.T) {
	w := get(newServer(t, config.ShapeWrapped), "/slots?barber_id=3&date=2000-01-01")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Body.String(); got != `{"slots":[]}` {
		t.Fatalf("body = %s", got)
	}
}

func TestAvailableRejectsBadInput(t *testing.T) {
	r := newServer(t, config.ShapeWrapped)

	cases := map[string]string{
		"/slots?barber_id=3":                    "missing_params",
		"/slots?date=2999-05-10":                "missing_params",
		"/slots?barber_id=3&date=10%2F05%2F2999": "invalid_date",
	}
	for target, code := range cases {
		w := get(r, target)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d", target, w.Code)
			continue
		}
		var he httperr.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &he); err != nil {
			t.Errorf("%s: decode: %v", target, err)
			continue
		}
		if he.Code != code {
			t.Errorf("%s: code = %q, want %q", target, he.Code, code)
		}
	}
}

func TestHealth(t *testing.T) {
	w := get(newServer(t, config.ShapeWrapped), "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestAvailableFailureLogsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	cfg := &config.Config{
		ResponseShape: config.ShapeWrapped,
		DayGrid:       []string{"9h"},
		Timezone:      "UTC",
	}
	r := gin.New()
	routes.RegisterRoutes(r, infraRepo.NewBookingMemoryRepository(), cfg)

	req := httptest.NewRequest(http.MethodGet, "/slots?barber_id=3&date=2999-05-10", nil)
	req.Header.Set(requestid.Header, "load-99")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	var he httperr.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &he); err != nil || he.Code != "availability_failed" {
		t.Fatalf("body = %s (%v)", w.Body, err)
	}
	if got := w.Header().Get(requestid.Header); got != "load-99" {
		t.Fatalf("echoed id = %q", got)
	}
	if !bytes.Contains(logs.Bytes(), []byte("request=load-99")) {
		t.Fatalf("log = %q", logs.String())
	}
}
