package cli

import (
	"context"

	"github.com/linguago/linguago/internal/domain/entities"
)

func (h *Handler) courseScreen(ctx context.Context, lang entities.Language) (route, error) {
	_, user := h.session.Snapshot()
	if user == nil {
		return routeLogin, nil
	}

	course, err := h.courses.GetByLanguage(lang)
	if err != nil {
		h.notify(msgCourseNotFound)
		return routeDashboard, nil
	}

	progress := user.Progress(course.Language)

	h.printf("\n--- Curso de %s ---\n", course.Name)
	h.printf("%s\n", course.Description)
	h.printf("%s\n\n", buildProgressBar(progress, 20))

	for i, lesson := range course.Lessons {
		status := entities.LessonStatusAt(i, progress)
		icon := lessonIcon(status == entities.LessonCompleted, status == entities.LessonCurrent)
		h.printf("  %s %d. %s\n", icon, i+1, lesson.Title)
	}

	if progress >= 100 {
		h.notify(msgCourseFinished)
		h.printf("\n(v) volver  (q) salir\n")
		choice, err := h.choose("Opción", "v", "q")
		if err != nil || choice == "q" {
			return routeQuit, err
		}
		return routeDashboard, nil
	}

	h.printf("\n(c) completar lección actual  (v) volver  (q) salir\n")
	choice, err := h.choose("Opción", "c", "v", "q")
	if err != nil {
		return routeQuit, err
	}

	switch choice {
	case "v":
		return routeDashboard, nil
	case "q":
		return routeQuit, nil
	}

	// Completing the current lesson advances progress by one 20-point step.
	newProgress := entities.ClampProgress(progress + entities.ProgressPerLesson)

	update := entities.ProgressUpdate{}
	switch course.Language {
	case entities.LanguageEnglish:
		update.English = &newProgress
	case entities.LanguageFrench:
		update.French = &newProgress
	case entities.LanguageRussian:
		update.Russian = &newProgress
	}

	if err := h.auth.UpdateProgress(ctx, user.ID, update); err != nil {
		h.notifyError(err)
		return routeCourse(lang), nil
	}

	user.SetProgress(course.Language, newProgress)
	h.session.SetUser(user)
	h.notify(msgLessonCompleted)

	return routeCourse(lang), nil
}
