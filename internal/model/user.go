package model

import "time"

// Role distinguishes the two account kinds. The set is open-ended: the role
// is stored as-is, and anything outside these two simply has no login surface.
type Role string

const (
	RoleTeacher Role = "profesor"
	RoleStudent Role = "estudiante"
)

// User represents a registered account. The JSON tags are the on-disk record
// format and the wire format the web client consumes, which is why they keep
// the Spanish field names.
type User struct {
	ID           string     `json:"id"`
	GivenNames   string     `json:"nombres"`
	FamilyNames  string     `json:"apellidos"`
	DNI          string     `json:"dni"`
	Email        string     `json:"correo"`
	PasswordHash string     `json:"contrasena,omitempty"`
	Role         Role       `json:"tipo"`
	RegisteredAt time.Time  `json:"fecha_registro"`
	LastAccessAt *time.Time `json:"ultimo_acceso"`

	// Teacher only.
	Specialty string `json:"especialidad,omitempty"`
	// Student only.
	GradeLevel string `json:"grado,omitempty"`
	Section    string `json:"seccion,omitempty"`
}

// WithoutPassword returns a copy safe to expose to clients. The cleared hash
// drops out of the JSON via omitempty.
func (u User) WithoutPassword() User {
	u.PasswordHash = ""
	return u
}

// RegisterUserRequest carries the registration payload. Required-field and
// format checks happen in the service so the client sees the exact message
// contract, not binding-tag translations.
type RegisterUserRequest struct {
	ID          string `json:"id"`
	GivenNames  string `json:"nombres"`
	FamilyNames string `json:"apellidos"`
	DNI         string `json:"dni"`
	Email       string `json:"correo"`
	Password    string `json:"contrasena"`
	Specialty   string `json:"especialidad"`
	GradeLevel  string `json:"grado"`
	Section     string `json:"seccion"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	ID       string `json:"id" binding:"required"`
	Password string `json:"contrasena" binding:"required"`
}
