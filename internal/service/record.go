package service

import (
	"errors"
	"strings"
	"time"

	"github.com/keysheet/keysheet-go/internal/model"
	"github.com/keysheet/keysheet-go/internal/repository"
)

var (
	ErrPurposeRequired = errors.New("purpose is required")
	ErrEmptyPassword   = errors.New("password must not be empty")
)

// RecordService writes generated passwords into the record sheet. A record
// without a purpose is rejected rather than saved with a placeholder,
// matching the long-standing behavior callers rely on.
type RecordService struct {
	store *repository.SheetStore
	now   func() time.Time
}

// NewRecordService creates a RecordService backed by the given sheet store.
func NewRecordService(store *repository.SheetStore) *RecordService {
	return &RecordService{store: store, now: time.Now}
}

// Save appends a (purpose, password, timestamp) record, stamping the current
// time. The stored purpose is upper-cased by the sheet store.
func (s *RecordService) Save(req model.RecordRequest) (model.RecordResponse, error) {
	if strings.TrimSpace(req.Purpose) == "" {
		return model.RecordResponse{}, ErrPurposeRequired
	}
	if req.Password == "" {
		return model.RecordResponse{}, ErrEmptyPassword
	}

	rec := model.Record{
		Purpose:   req.Purpose,
		Password:  req.Password,
		Timestamp: s.now().Format(model.TimestampLayout),
	}

	if err := s.store.Append(&rec); err != nil {
		return model.RecordResponse{}, err
	}

	return model.RecordResponse{
		Purpose:   rec.Purpose,
		Password:  rec.Password,
		Timestamp: rec.Timestamp,
	}, nil
}

// List returns every saved record in append order, oldest first.
func (s *RecordService) List() ([]model.RecordResponse, error) {
	records, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}

	responses := make([]model.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, model.RecordResponse{
			Purpose:   rec.Purpose,
			Password:  rec.Password,
			Timestamp: rec.Timestamp,
		})
	}

	return responses, nil
}
