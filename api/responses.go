package api

import "time"

// ErrorResponse is the envelope for every error reply. Error carries a
// human-readable message, Class a machine-readable category; internal
// error text never appears in either.
type ErrorResponse struct {
	Error     string            `json:"error"`
	Class     string            `json:"class"`
	Details   map[string]string `json:"details,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// Error classes carried in ErrorResponse.Class.
const (
	ClassBadRequest   = "bad_request"
	ClassUnauthorized = "unauthorized"
	ClassNotFound     = "not_found"
	ClassUnavailable  = "unavailable"
	ClassInternal     = "internal"
)

// LoginRequest is the admin gate payload.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse carries the opaque session token on success.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// UploadResponse mirrors the upload contract of the hosted blob service the
// frontend was originally written against.
type UploadResponse struct {
	URL          string `json:"url"`
	SecureURL    string `json:"secure_url"`
	PublicID     string `json:"public_id"`
	Bytes        int64  `json:"bytes"`
	Format       string `json:"format"`
	ResourceType string `json:"resource_type"`
}

// StatusResponse is the environment probe payload.
type StatusResponse struct {
	Timestamp time.Time     `json:"timestamp"`
	Services  ServiceStatus `json:"services"`
}

type ServiceStatus struct {
	Database DatabaseStatus `json:"database"`
	Blob     BlobStatus     `json:"blob"`
	Admin    AdminStatus    `json:"admin"`
}

type DatabaseStatus struct {
	Configured bool   `json:"configured"`
	State      string `json:"state"`
	Type       string `json:"type"`
}

type BlobStatus struct {
	Configured bool `json:"configured"`
}

type AdminStatus struct {
	Configured      bool `json:"configured"`
	DefaultPassword bool `json:"defaultPassword"`
}
