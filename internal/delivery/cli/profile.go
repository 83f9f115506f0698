package cli

import (
	"context"

	"github.com/linguago/linguago/internal/domain/entities"
)

func (h *Handler) profileScreen(ctx context.Context) (route, error) {
	_, user := h.session.Snapshot()
	if user == nil {
		return routeLogin, nil
	}

	h.printf("\n--- Mi perfil ---\n")
	h.printf("Nombre:  %s\n", user.Name)
	h.printf("Correo:  %s\n", user.Email)
	h.printf("País:    %s\n", user.Country)
	h.printf("Nivel:   %s\n", user.Level)
	h.printf("\n(e) editar  (x) eliminar cuenta  (v) volver  (q) salir\n")

	choice, err := h.choose("Opción", "e", "x", "v", "q")
	if err != nil {
		return routeQuit, err
	}

	switch choice {
	case "v":
		return routeDashboard, nil
	case "q":
		return routeQuit, nil
	case "x":
		return h.deleteAccountFlow(ctx, user)
	}

	return h.editProfileFlow(ctx, user)
}

// editProfileFlow prompts for new values; an empty answer keeps the current
// one. The backend's response replaces the cached record.
func (h *Handler) editProfileFlow(ctx context.Context, user *entities.User) (route, error) {
	name, err := h.prompt("Nombre [" + user.Name + "]")
	if err != nil {
		return routeQuit, err
	}
	country, err := h.prompt("País [" + user.Country + "]")
	if err != nil {
		return routeQuit, err
	}
	avatar, err := h.prompt("Avatar [" + user.Avatar + "]")
	if err != nil {
		return routeQuit, err
	}
	level, err := h.prompt("Nivel [" + user.Level + "]")
	if err != nil {
		return routeQuit, err
	}

	var fields entities.UserPatch
	if name != "" {
		if err := validateProfile(name); err != nil {
			h.notifyError(err)
			return routeProfile, nil
		}
		fields.Name = &name
	}
	if country != "" {
		fields.Country = &country
	}
	if avatar != "" {
		fields.Avatar = &avatar
	}
	if level != "" {
		fields.Level = &level
	}

	updated, err := h.auth.UpdateProfile(ctx, user.ID, fields)
	if err != nil {
		h.notifyError(err)
		return routeProfile, nil
	}

	h.session.SetUser(updated)
	h.notify(msgProfileSaved)

	return routeProfile, nil
}

// deleteAccountFlow asks for a typed confirmation before removing the
// account server-side and ending the local session.
func (h *Handler) deleteAccountFlow(ctx context.Context, user *entities.User) (route, error) {
	h.printf("Esta acción es permanente. Escribe ELIMINAR para confirmar.\n")

	confirm, err := h.prompt("Confirmación")
	if err != nil {
		return routeQuit, err
	}
	if confirm != "ELIMINAR" {
		h.notify(msgDeleteNotConfirmed)
		return routeProfile, nil
	}

	if err := h.auth.DeleteAccount(ctx, user.ID); err != nil {
		h.notifyError(err)
		return routeProfile, nil
	}

	// The persisted session is already gone; drop the in-memory state too.
	if err := h.session.Logout(ctx); err != nil {
		h.notifyError(err)
	}
	h.notify(msgAccountDeleted)

	return routeLogin, nil
}
