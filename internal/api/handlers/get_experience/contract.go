package get_experience

import (
	"context"

	getExperience "github.com/m04kA/experience-booking/internal/usecase/get_experience"
)

type GetExperienceUseCase interface {
	Execute(ctx context.Context, req *getExperience.Request) (*getExperience.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
