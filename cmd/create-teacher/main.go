package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/aulanet/aulanet-backend/internal/config"
	"github.com/aulanet/aulanet-backend/internal/logger"
	"github.com/aulanet/aulanet-backend/internal/model"
	"github.com/aulanet/aulanet-backend/internal/repository"
	"github.com/aulanet/aulanet-backend/internal/service"
	"github.com/aulanet/aulanet-backend/internal/store"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	// ─── Open Collection Store ─────────────────────────────────────────
	st, err := store.New(cfg.DataDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open data directory")
	}

	// ─── Initialize Service ────────────────────────────────────────────
	userRepo := repository.NewUserRepository(st)
	authService := service.NewAuthService(cfg)
	userService := service.NewUserService(userRepo, authService, log)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Teacher Account ===")

	req := model.RegisterUserRequest{
		ID:          prompt(reader, "ID"),
		GivenNames:  prompt(reader, "Given names"),
		FamilyNames: prompt(reader, "Family names"),
		DNI:         prompt(reader, "DNI (8 digits)"),
		Email:       prompt(reader, "Email"),
		Specialty:   prompt(reader, "Specialty"),
	}

	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	fmt.Println() // Newline after password input
	req.Password = string(bytePassword)

	// ─── Logic ─────────────────────────────────────────────────────────
	if err := userService.Register(req, model.RoleTeacher); err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nSuccess! Teacher '%s %s' (%s) created\n", req.GivenNames, req.FamilyNames, req.ID)
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Printf("Enter %s: ", label)
	value, _ := reader.ReadString('\n')
	return strings.TrimSpace(value)
}
