package model

// TimestampLayout is the wire format for record timestamps, matching the
// existing sheet contents: YYYY-MM-DD HH:MM:SS.
const TimestampLayout = "2006-01-02 15:04:05"

// Record is one persisted (purpose, password, timestamp) row. Records are
// immutable once written; the store only ever appends.
type Record struct {
	Purpose   string
	Password  string
	Timestamp string
}

// RecordRequest represents a request to record a generated password.
type RecordRequest struct {
	Purpose  string `json:"purpose"`
	Password string `json:"password"`
}

// RecordResponse represents one record as returned by the API.
type RecordResponse struct {
	Purpose   string `json:"purpose"`
	Password  string `json:"password"`
	Timestamp string `json:"timestamp"`
}
