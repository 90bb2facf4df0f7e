package service

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/aulanet/aulanet-backend/internal/model"
	"github.com/aulanet/aulanet-backend/internal/repository"
	"github.com/aulanet/aulanet-backend/internal/store"
	"github.com/aulanet/aulanet-backend/internal/validator"
)

// UserService implements registration, login and account lookups over the
// user collection.
type UserService struct {
	userRepo *repository.UserRepository
	auth     *AuthService
	log      zerolog.Logger
}

func NewUserService(userRepo *repository.UserRepository, auth *AuthService, log zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		auth:     auth,
		log:      log.With().Str("component", "user_service").Logger(),
	}
}

// Register validates the payload and appends a new user record. The checks
// run in a fixed order and stop at the first failure: required fields, DNI
// format, email format, password strength, duplicate ID, duplicate email.
func (s *UserService) Register(req model.RegisterUserRequest, role model.Role) error {
	required := []struct {
		name  string
		value string
	}{
		{"id", req.ID},
		{"nombres", req.GivenNames},
		{"apellidos", req.FamilyNames},
		{"dni", req.DNI},
		{"correo", req.Email},
		{"contrasena", req.Password},
		{"tipo", string(role)},
	}
	for _, field := range required {
		if field.value == "" {
			return validationErr("El campo %s es obligatorio", field.name)
		}
	}

	if !validator.IsValidDNI(req.DNI) {
		return validationErr("DNI invalido. Debe tener 8 digitos")
	}
	if !validator.IsValidEmail(req.Email) {
		return validationErr("Correo electronico invalido")
	}
	if ok, reason := validator.ValidatePassword(req.Password); !ok {
		return validationErr("%s", reason)
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		s.log.Error().Err(err).Msg("Password hash failed")
		return storeErr("Error al guardar el usuario")
	}

	user := model.User{
		ID:           req.ID,
		GivenNames:   req.GivenNames,
		FamilyNames:  req.FamilyNames,
		DNI:          req.DNI,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		RegisteredAt: time.Now(),
	}
	switch role {
	case model.RoleTeacher:
		user.Specialty = req.Specialty
	case model.RoleStudent:
		user.GradeLevel = req.GradeLevel
		user.Section = req.Section
	}

	// The uniqueness checks and the append happen under one collection lock,
	// so two registrations racing on the same ID or email cannot both land.
	if err := s.userRepo.AppendUnique(user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateID):
			return conflictErr("Este ID ya esta registrado")
		case errors.Is(err, repository.ErrDuplicateEmail):
			return conflictErr("Este correo ya esta registrado")
		case errors.Is(err, store.ErrCorrupt):
			return storeErr("Error al leer los datos del sistema")
		}
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("User save failed")
		return storeErr("Error al guardar el usuario")
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(role)).Msg("User registered")
	return nil
}

// Login checks credentials and stamps the last-access time. The returned
// record never carries the password hash.
func (s *UserService) Login(id, password string) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, storeErr("Error al leer los datos del sistema")
	}
	if user == nil {
		return nil, notFoundErr("Usuario no encontrado")
	}

	if err := s.auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, unauthorizedErr("Contrasena incorrecta")
	}

	if err := s.userRepo.TouchLastAccess(id, time.Now()); err != nil {
		// The login itself succeeded; the stale stamp is logged, not fatal.
		s.log.Warn().Err(err).Str("user_id", id).Msg("Last-access stamp failed")
	}

	sanitized := user.WithoutPassword()
	return &sanitized, nil
}

// FindByID returns the user with the given ID, or a not-found error.
func (s *UserService) FindByID(id string) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, storeErr("Error al leer los datos del sistema")
	}
	if user == nil {
		return nil, notFoundErr("Usuario no encontrado")
	}
	return user, nil
}

// FindByEmail returns the user with the given email, or a not-found error.
// Emails are unique by the registration invariant.
func (s *UserService) FindByEmail(email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, storeErr("Error al leer los datos del sistema")
	}
	if user == nil {
		return nil, notFoundErr("Usuario no encontrado")
	}
	return user, nil
}

// ListStudents returns every account with the student role, sanitized.
func (s *UserService) ListStudents() ([]model.User, error) {
	users, err := s.userRepo.All()
	if err != nil {
		return nil, storeErr("Error al leer los datos del sistema")
	}
	students := make([]model.User, 0, len(users))
	for _, u := range users {
		if u.Role == model.RoleStudent {
			students = append(students, u.WithoutPassword())
		}
	}
	return students, nil
}
