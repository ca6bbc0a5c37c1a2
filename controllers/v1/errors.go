package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	filestorage "mock-interview-backend/lib/file-storage"
	interviewhandler "mock-interview-backend/lib/interview"
	interviewmanager "mock-interview-backend/lib/interview/manager"
	resumeparser "mock-interview-backend/lib/resume"
)

var clientErrors = []error{
	interviewhandler.ErrSessionNotFound,
	interviewhandler.ErrInterviewActive,
	interviewhandler.ErrUnexpectedState,
	interviewhandler.ErrNotCompleted,
	interviewhandler.ErrInvalidFileName,
	interviewmanager.ErrInvalidState,
	interviewmanager.ErrIndexOutOfRange,
	interviewmanager.ErrAlreadyAnswered,
	interviewmanager.ErrUnknownState,
	resumeparser.ErrUnsupportedType,
	resumeparser.ErrNoText,
}

// errorStatus сопоставляет ошибку обработчика интервью с http статусом
func errorStatus(err error) int {
	switch {
	case errors.Is(err, interviewhandler.ErrSessionBusy):
		return fiber.StatusConflict
	case errors.Is(err, filestorage.ErrFileNotFound),
		errors.Is(err, interviewhandler.ErrAudioUnavailable):
		return fiber.StatusNotFound
	}
	for _, clientErr := range clientErrors {
		if errors.Is(err, clientErr) {
			return fiber.StatusBadRequest
		}
	}
	return fiber.StatusInternalServerError
}
