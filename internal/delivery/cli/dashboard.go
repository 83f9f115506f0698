package cli

import (
	"context"
	"fmt"
)

func (h *Handler) dashboardScreen(ctx context.Context) (route, error) {
	_, user := h.session.Snapshot()
	if user == nil {
		return routeLogin, nil
	}

	h.printf("\n--- Mis cursos ---\n")
	h.printf("Hola, %s (%s)\n\n", user.Name, user.Level)

	courses := h.courses.GetAll()
	for i, course := range courses {
		progress := user.Progress(course.Language)
		h.printf("(%d) %-8s %s\n", i+1, course.Name, buildProgressBar(progress, 20))
		h.printf("    %s\n", course.Description)
	}

	h.printf("\n(p) perfil  (s) cerrar sesión  (q) salir\n")

	options := []string{"p", "s", "q"}
	for i := range courses {
		options = append(options, fmt.Sprintf("%d", i+1))
	}

	choice, err := h.choose("Opción", options...)
	if err != nil {
		return routeQuit, err
	}

	switch choice {
	case "p":
		return routeProfile, nil
	case "s":
		if err := h.session.Logout(ctx); err != nil {
			h.notifyError(err)
			return routeDashboard, nil
		}
		h.notify(msgLoggedOut)
		return routeLogin, nil
	case "q":
		return routeQuit, nil
	}

	for i, course := range courses {
		if choice == fmt.Sprintf("%d", i+1) {
			return routeCourse(course.Language), nil
		}
	}

	return routeDashboard, nil
}
