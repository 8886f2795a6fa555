package get_experience

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	expRepo "github.com/m04kA/SMC-ExperienceService/internal/infra/storage/experience"
)

var (
	testNow          = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	testExperienceID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
)

type fakeExperienceRepo struct {
	experiences map[uuid.UUID]*domain.Experience
}

func (f *fakeExperienceRepo) GetActiveByID(_ context.Context, id uuid.UUID) (*domain.Experience, error) {
	e, ok := f.experiences[id]
	if !ok {
		return nil, expRepo.ErrExperienceNotFound
	}
	return e, nil
}

type fakeSlotRepo struct {
	slots    []*domain.Slot
	gotFrom  time.Time
	gotExpID uuid.UUID
}

func (f *fakeSlotRepo) ListAvailableByExperience(_ context.Context, experienceID uuid.UUID, fromDate time.Time) ([]*domain.Slot, error) {
	f.gotExpID = experienceID
	f.gotFrom = fromDate
	return f.slots, nil
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(experiences *fakeExperienceRepo, slots *fakeSlotRepo) *UseCase {
	uc := NewUseCase(experiences, slots, nopLogger{})
	uc.timeProvider = &fixedTime{now: testNow}
	return uc
}

func TestExecute(t *testing.T) {
	experience := &domain.Experience{ID: testExperienceID, Title: "Sunset Kayak Tour", IsActive: true}
	slots := []*domain.Slot{
		{ExperienceID: testExperienceID, Time: "09:00", AvailableCapacity: 5},
		{ExperienceID: testExperienceID, Time: "14:00", AvailableCapacity: 2},
	}

	slotRepo := &fakeSlotRepo{slots: slots}
	uc := newTestUseCase(
		&fakeExperienceRepo{experiences: map[uuid.UUID]*domain.Experience{testExperienceID: experience}},
		slotRepo,
	)

	resp, err := uc.Execute(context.Background(), testExperienceID)
	require.NoError(t, err)

	assert.Equal(t, experience, resp.Experience)
	assert.Equal(t, slots, resp.Slots)
	assert.Equal(t, testExperienceID, slotRepo.gotExpID)
	assert.Equal(t, testNow, slotRepo.gotFrom, "слоты фильтруются от текущей даты")
}

func TestExecute_EmptySlots(t *testing.T) {
	experience := &domain.Experience{ID: testExperienceID, IsActive: true}
	uc := newTestUseCase(
		&fakeExperienceRepo{experiences: map[uuid.UUID]*domain.Experience{testExperienceID: experience}},
		&fakeSlotRepo{},
	)

	resp, err := uc.Execute(context.Background(), testExperienceID)
	require.NoError(t, err)
	assert.Empty(t, resp.Slots, "experience без слотов - валидный результат")
}

func TestExecute_NotFound(t *testing.T) {
	uc := newTestUseCase(&fakeExperienceRepo{}, &fakeSlotRepo{})

	_, err := uc.Execute(context.Background(), testExperienceID)
	assert.ErrorIs(t, err, ErrExperienceNotFound)
}
