package cli

import (
	"context"
	"fmt"

	"github.com/linguago/linguago/internal/domain/entities"
)

func (h *Handler) registerScreen(ctx context.Context) (route, error) {
	h.printf("\n--- Crear cuenta ---\n")

	name, err := h.prompt("Nombre")
	if err != nil {
		return routeQuit, err
	}
	email, err := h.prompt("Correo electrónico")
	if err != nil {
		return routeQuit, err
	}
	password, err := h.prompt("Contraseña")
	if err != nil {
		return routeQuit, err
	}
	confirm, err := h.prompt("Confirmar contraseña")
	if err != nil {
		return routeQuit, err
	}
	country, err := h.prompt("País (opcional)")
	if err != nil {
		return routeQuit, err
	}

	data := entities.RegisterData{
		Name:            name,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
		Country:         country,
	}
	if err := validateRegister(data); err != nil {
		h.notifyError(err)
		return routeRegister, nil
	}

	// Registration auto-logs-in with the same credentials on success.
	user, err := h.auth.Register(ctx, data)
	if err != nil {
		h.notifyError(err)
		return routeRegister, nil
	}

	h.session.Login(user)
	h.notify(fmt.Sprintf(msgAccountCreated, user.Name))

	return routeDashboard, nil
}
