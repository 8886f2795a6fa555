package get_experiences

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
)

type fakeExperienceRepo struct {
	experiences []*domain.Experience
	err         error
}

func (f *fakeExperienceRepo) ListActive(_ context.Context) ([]*domain.Experience, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.experiences, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute(t *testing.T) {
	expected := []*domain.Experience{
		{Title: "Sunset Kayak Tour", Rating: 4.9},
		{Title: "City Food Walk", Rating: 4.5},
	}
	uc := NewUseCase(&fakeExperienceRepo{experiences: expected}, nopLogger{})

	got, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestExecute_Empty(t *testing.T) {
	uc := NewUseCase(&fakeExperienceRepo{}, nopLogger{})

	got, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got, "пустой каталог - валидный результат")
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := NewUseCase(&fakeExperienceRepo{err: errors.New("connection refused")}, nopLogger{})

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
