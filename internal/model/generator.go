package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Lowercase *bool `json:"lowercase"`
	Uppercase *bool `json:"uppercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// GenerateResponse represents a password generation response. PoolSize is the
// number of characters the password was drawn from.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	PoolSize int    `json:"pool_size"`
}
