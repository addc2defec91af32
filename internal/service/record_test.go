package service

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/keysheet/keysheet-go/internal/model"
	"github.com/keysheet/keysheet-go/internal/repository"
)

func newTestRecordService(t *testing.T) *RecordService {
	t.Helper()
	store := repository.NewSheetStore(filepath.Join(t.TempDir(), "passwords_sheet.xlsx"))
	svc := NewRecordService(store)
	svc.now = func() time.Time {
		return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestSave(t *testing.T) {
	svc := newTestRecordService(t)

	resp, err := svc.Save(model.RecordRequest{Purpose: "email", Password: "X7g!qT2z"})
	if err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	if resp.Purpose != "EMAIL" {
		t.Errorf("Save() purpose = %q, want %q", resp.Purpose, "EMAIL")
	}
	if resp.Password != "X7g!qT2z" {
		t.Errorf("Save() password = %q, want unchanged", resp.Password)
	}
	if resp.Timestamp != "2024-01-01 00:00:00" {
		t.Errorf("Save() timestamp = %q, want %q", resp.Timestamp, "2024-01-01 00:00:00")
	}
}

func TestSaveEmptyPurpose(t *testing.T) {
	svc := newTestRecordService(t)

	for _, purpose := range []string{"", "   "} {
		_, err := svc.Save(model.RecordRequest{Purpose: purpose, Password: "pw"})
		if !errors.Is(err, ErrPurposeRequired) {
			t.Errorf("Save(purpose=%q) error = %v, want ErrPurposeRequired", purpose, err)
		}
	}
}

func TestSaveEmptyPassword(t *testing.T) {
	svc := newTestRecordService(t)

	_, err := svc.Save(model.RecordRequest{Purpose: "email"})
	if !errors.Is(err, ErrEmptyPassword) {
		t.Errorf("Save() error = %v, want ErrEmptyPassword", err)
	}
}

func TestListAfterSaves(t *testing.T) {
	svc := newTestRecordService(t)

	if _, err := svc.Save(model.RecordRequest{Purpose: "email", Password: "first"}); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	if _, err := svc.Save(model.RecordRequest{Purpose: "wifi", Password: "second"}); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	records, err := svc.List()
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("List() returned %d records, want 2", len(records))
	}
	if records[0].Purpose != "EMAIL" || records[0].Password != "first" {
		t.Errorf("first record = %+v, want EMAIL/first", records[0])
	}
	if records[1].Purpose != "WIFI" || records[1].Password != "second" {
		t.Errorf("second record = %+v, want WIFI/second", records[1])
	}
}

func TestListEmptyStore(t *testing.T) {
	svc := newTestRecordService(t)

	records, err := svc.List()
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("List() on fresh store = %+v, want empty", records)
	}
}
