package services

import (
	"errors"
	"time"

	"github.com/drewlara/gym-notes-api/models"

	"gorm.io/gorm"
)

var (
	// ErrWorkoutNotFound marks lookups of ids that do not exist.
	ErrWorkoutNotFound = errors.New("workout not found")
	// ErrNotOwner marks mutations of a record owned by another user.
	ErrNotOwner = errors.New("workout does not belong to user")
)

type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

// WorkoutFields carries the mutable fields of a workout. Comments is nil when
// the client did not record one.
type WorkoutFields struct {
	Name     string
	Type     string
	Weight   string
	Reps     string
	Date     time.Time
	Comments *string
}

// ListWorkouts returns every workout owned by userID, in store order. An
// owner with no records gets an empty slice, not an error.
func (s *WorkoutService) ListWorkouts(userID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	err := s.db.
		Where("user_id = ?", userID).
		Find(&workouts).Error
	return workouts, err
}

// CreateWorkout persists a new workout owned by userID. The owner always
// comes from the authenticated caller, never from the request body.
func (s *WorkoutService) CreateWorkout(userID uint, fields WorkoutFields) (*models.Workout, error) {
	workout := models.Workout{
		UserID:   userID,
		Name:     fields.Name,
		Type:     fields.Type,
		Weight:   fields.Weight,
		Reps:     fields.Reps,
		Date:     fields.Date,
		Comments: fields.Comments,
	}
	if err := s.db.Create(&workout).Error; err != nil {
		return nil, err
	}
	return &workout, nil
}

// UpdateWorkout replaces all mutable fields of the workout identified by id,
// comments included, and leaves the owner untouched. The record must belong
// to userID.
func (s *WorkoutService) UpdateWorkout(userID, id uint, fields WorkoutFields) (*models.Workout, error) {
	workout, err := s.getOwned(userID, id)
	if err != nil {
		return nil, err
	}

	workout.Name = fields.Name
	workout.Type = fields.Type
	workout.Weight = fields.Weight
	workout.Reps = fields.Reps
	workout.Date = fields.Date
	workout.Comments = fields.Comments

	if err := s.db.Save(workout).Error; err != nil {
		return nil, err
	}
	return workout, nil
}

// DeleteWorkout removes the workout identified by id and returns it. The
// record must belong to userID. Removal is immediate; there is no soft delete.
func (s *WorkoutService) DeleteWorkout(userID, id uint) (*models.Workout, error) {
	workout, err := s.getOwned(userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Unscoped().Delete(workout).Error; err != nil {
		return nil, err
	}
	return workout, nil
}

// GetWorkout fetches one workout owned by userID.
func (s *WorkoutService) GetWorkout(userID, id uint) (*models.Workout, error) {
	return s.getOwned(userID, id)
}

func (s *WorkoutService) getOwned(userID, id uint) (*models.Workout, error) {
	var workout models.Workout
	if err := s.db.First(&workout, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	if workout.UserID != userID {
		return nil, ErrNotOwner
	}
	return &workout, nil
}
