package list_experiences

import (
	"context"

	listExperiences "github.com/m04kA/experience-booking/internal/usecase/list_experiences"
)

type ListExperiencesUseCase interface {
	Execute(ctx context.Context) (*listExperiences.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
