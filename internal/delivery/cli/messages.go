// messages.go contains user-facing message constants and formatting helpers.

package cli

import (
	"fmt"
	"strings"
)

const msgAppBanner = "=== LinguaGo — aprende idiomas a tu ritmo ==="

// Validation messages.
const (
	msgMissingFields       = "Por favor completa todos los campos."
	msgInvalidEmail        = "Ingresa un correo electrónico válido."
	msgNameTooShort        = "El nombre debe tener al menos 2 caracteres."
	msgPasswordTooShort    = "La contraseña debe tener al menos 8 caracteres."
	msgPasswordsDontMatch  = "Las contraseñas no coinciden."
	msgNewPasswordTooShort = "La nueva contraseña debe tener al menos 6 caracteres."
	msgUnknownOption       = "Opción no válida."
	msgCourseNotFound      = "Curso no encontrado."
	msgDeleteNotConfirmed  = "Eliminación cancelada."
)

// Notices.
const (
	msgWelcomeBack     = "¡Bienvenido de nuevo, %s!"
	msgAccountCreated  = "¡Cuenta creada! Sesión iniciada como %s."
	msgPasswordReset   = "Contraseña restablecida. Inicia sesión con tu nueva contraseña."
	msgLessonCompleted = "¡Lección completada! +20% de progreso"
	msgCourseFinished  = "¡Curso completado! Has alcanzado el 100%."
	msgProfileSaved    = "Perfil actualizado."
	msgAccountDeleted  = "Cuenta eliminada. Hasta pronto."
	msgLoggedOut       = "Sesión cerrada."
)

// lessonIcon maps a derived lesson status to its list marker.
func lessonIcon(completed, current bool) string {
	switch {
	case completed:
		return "[✓]"
	case current:
		return "[→]"
	default:
		return "[✗]"
	}
}

// buildProgressBar renders a textual progress bar for a percentage.
func buildProgressBar(percent, length int) string {
	filled := percent * length / 100
	if filled > length {
		filled = length
	}

	empty := length - filled
	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return fmt.Sprintf("[%s] %d%%", bar, percent)
}
