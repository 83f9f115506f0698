package cli

import (
	"context"
	"fmt"

	"github.com/linguago/linguago/internal/domain/entities"
)

func (h *Handler) loginScreen(ctx context.Context) (route, error) {
	h.printf("\n--- Iniciar sesión ---\n")
	h.printf("(1) entrar  (2) crear cuenta  (3) olvidé mi contraseña  (q) salir\n")

	choice, err := h.choose("Opción", "1", "2", "3", "q")
	if err != nil {
		return routeQuit, err
	}

	switch choice {
	case "2":
		return routeRegister, nil
	case "3":
		return routeForgotPassword, nil
	case "q":
		return routeQuit, nil
	}

	email, err := h.prompt("Correo electrónico")
	if err != nil {
		return routeQuit, err
	}
	password, err := h.prompt("Contraseña")
	if err != nil {
		return routeQuit, err
	}

	creds := entities.Credentials{Email: email, Password: password}
	if err := validateLogin(creds); err != nil {
		h.notifyError(err)
		return routeLogin, nil
	}

	user, err := h.auth.Login(ctx, creds)
	if err != nil {
		h.notifyError(err)
		return routeLogin, nil
	}

	h.session.Login(user)
	h.notify(fmt.Sprintf(msgWelcomeBack, user.Name))

	return routeDashboard, nil
}
