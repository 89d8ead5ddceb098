package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shiftwise/timeclock/internal/models"
	"github.com/shiftwise/timeclock/internal/report"
	"github.com/shiftwise/timeclock/internal/store"
)

// fakeStore backs all three endpoints in-memory.
type fakeStore struct {
	employees []models.Employee
	events    []models.AttendanceEvent
	nextID    int64
}

func (f *fakeStore) ListEmployees(context.Context) ([]models.EmployeeSummary, error) {
	out := []models.EmployeeSummary{}
	for _, e := range f.employees {
		out = append(out, models.EmployeeSummary{ID: e.ID, Name: e.Name})
	}
	return out, nil
}

func (f *fakeStore) GetEmployee(_ context.Context, id int64) (models.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Employee{}, store.ErrNotFound
}

func (f *fakeStore) InsertEvent(_ context.Context, employeeID int64, action string, ts time.Time) (int64, error) {
	f.nextID++
	f.events = append(f.events, models.AttendanceEvent{
		ID:         f.nextID,
		EmployeeID: employeeID,
		Action:     action,
		Timestamp:  ts,
	})
	return f.nextID, nil
}

func (f *fakeStore) ListEventsInRange(_ context.Context, employeeID int64, from, to time.Time) ([]models.AttendanceEvent, error) {
	var out []models.AttendanceEvent
	for _, ev := range f.events {
		if ev.EmployeeID == employeeID && !ev.Timestamp.Before(from) && ev.Timestamp.Before(to) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func newTestRouter(fs *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	RegisterEmployeeRoutes(api, fs)
	RegisterAttendanceRoutes(api, fs)
	RegisterReportRoutes(api, report.NewBuilder(fs))
	return r
}

func seededStore() *fakeStore {
	return &fakeStore{
		employees: []models.Employee{
			{ID: 1, Name: "John Doe", HourlyRate: 15.00},
			{ID: 2, Name: "Jane Smith", HourlyRate: 18.50},
		},
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEmployees_ListsRoster(t *testing.T) {
	r := newTestRouter(seededStore())

	w := doJSON(t, r, "GET", "/api/employees", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var got []models.EmployeeSummary
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != 2 || got[0].Name != "John Doe" || got[1].Name != "Jane Smith" {
		t.Fatalf("unexpected roster: %+v", got)
	}
}

func TestAttendance_RecordsEvent(t *testing.T) {
	fs := seededStore()
	r := newTestRouter(fs)

	w := doJSON(t, r, "POST", "/api/attendance", models.AttendanceRequest{EmployeeID: 1, Action: models.ActionCheckIn})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var resp models.AttendanceResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("status = %q, want success", resp.Status)
	}
	if len(fs.events) != 1 || fs.events[0].Action != models.ActionCheckIn {
		t.Fatalf("event not stored: %+v", fs.events)
	}
	// Second precision only.
	if fs.events[0].Timestamp.Nanosecond() != 0 {
		t.Errorf("timestamp not truncated: %v", fs.events[0].Timestamp)
	}
}

func TestAttendance_RejectsBadInput(t *testing.T) {
	cases := []struct {
		name    string
		payload any
		want    int
	}{
		{"invalid action", models.AttendanceRequest{EmployeeID: 1, Action: "lunch"}, http.StatusBadRequest},
		{"missing employee_id", models.AttendanceRequest{Action: models.ActionCheckIn}, http.StatusBadRequest},
		{"unknown employee", models.AttendanceRequest{EmployeeID: 99, Action: models.ActionCheckIn}, http.StatusNotFound},
		{"not JSON", "plain text", http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fs := seededStore()
			r := newTestRouter(fs)

			w := doJSON(t, r, "POST", "/api/attendance", tc.payload)
			if w.Code != tc.want {
				t.Fatalf("expected %d got %d: %s", tc.want, w.Code, w.Body.String())
			}
			if len(fs.events) != 0 {
				t.Errorf("rejected request persisted an event: %+v", fs.events)
			}
		})
	}
}

func TestReport_ComputesMonth(t *testing.T) {
	fs := seededStore()
	r := newTestRouter(fs)

	day := time.Date(2024, 3, 5, 9, 0, 0, 0, time.Local)
	fs.InsertEvent(context.Background(), 1, models.ActionCheckIn, day)
	fs.InsertEvent(context.Background(), 1, models.ActionCheckOut, day.Add(8*time.Hour+30*time.Minute))

	w := doJSON(t, r, "GET", "/api/report/1/2024/3", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var rep models.Report
	if err := json.Unmarshal(w.Body.Bytes(), &rep); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if rep.EmployeeName != "John Doe" || rep.Month != "2024-03" {
		t.Errorf("header fields: %+v", rep)
	}
	if rep.TotalHours != 8.5 || rep.TotalPay != 127.5 {
		t.Errorf("totals = %v / %v, want 8.5 / 127.5", rep.TotalHours, rep.TotalPay)
	}
	if len(rep.Days) != 1 || rep.Days[0].Date != "2024-03-05" {
		t.Errorf("days: %+v", rep.Days)
	}
}

func TestReport_UnknownEmployeeIs404(t *testing.T) {
	r := newTestRouter(seededStore())

	w := doJSON(t, r, "GET", "/api/report/99/2024/3", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Error != "Employee not found" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestReport_BadPathParams(t *testing.T) {
	r := newTestRouter(seededStore())

	for _, path := range []string{
		"/api/report/abc/2024/3",
		"/api/report/1/year/3",
		"/api/report/1/2024/mar",
		"/api/report/1/2024/13",
		"/api/report/1/2024/0",
	} {
		w := doJSON(t, r, "GET", path, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400 got %d", path, w.Code)
		}
	}
}
