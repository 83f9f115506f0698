package cli

import "context"

func (h *Handler) forgotPasswordScreen(ctx context.Context) (route, error) {
	h.printf("\n--- Restablecer contraseña ---\n")

	email, err := h.prompt("Correo electrónico")
	if err != nil {
		return routeQuit, err
	}
	newPassword, err := h.prompt("Nueva contraseña")
	if err != nil {
		return routeQuit, err
	}

	if err := validatePasswordReset(email, newPassword); err != nil {
		h.notifyError(err)
		return routeForgotPassword, nil
	}

	if err := h.auth.ResetPassword(ctx, email, newPassword); err != nil {
		h.notifyError(err)
		return routeForgotPassword, nil
	}

	// No local state changes: the user logs in with the new password.
	h.notify(msgPasswordReset)

	return routeLogin, nil
}
