// controllers/workout_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/drewlara/gym-notes-api/models"
	"github.com/drewlara/gym-notes-api/services"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	svc *services.WorkoutService
}

func NewWorkoutController(svc *services.WorkoutService) *WorkoutController {
	return &WorkoutController{svc: svc}
}

// WorkoutInput is the request body for create and update. All five core
// fields are required together; a request missing any of them is rejected
// before the store is touched. Weight and reps are text by contract. Any
// owner field a client sends is ignored, the token decides ownership.
type WorkoutInput struct {
	Name     string    `json:"name" binding:"required"`
	Type     string    `json:"type" binding:"required"`
	Weight   string    `json:"weight" binding:"required"`
	Reps     string    `json:"reps" binding:"required"`
	Date     time.Time `json:"date" binding:"required"`
	Comments *string   `json:"comments"`
}

func (in *WorkoutInput) fields() services.WorkoutFields {
	return services.WorkoutFields{
		Name:     in.Name,
		Type:     in.Type,
		Weight:   in.Weight,
		Reps:     in.Reps,
		Date:     in.Date,
		Comments: in.Comments,
	}
}

// ListWorkouts returns every workout owned by the caller. An owner with no
// records gets an empty array, never an error.
func (ctl *WorkoutController) ListWorkouts(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	workouts, err := ctl.svc.ListWorkouts(userID)
	if err != nil {
		log.Printf("list workouts: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	serialized := make([]models.SerializedWorkout, 0, len(workouts))
	for i := range workouts {
		serialized = append(serialized, workouts[i].Serialize())
	}

	c.JSON(http.StatusOK, serialized)
}

// CreateWorkout persists a new workout owned by the caller.
func (ctl *WorkoutController) CreateWorkout(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	workout, err := ctl.svc.CreateWorkout(userID, input.fields())
	if err != nil {
		log.Printf("create workout: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, workout.Serialize())
}

// UpdateWorkout replaces all mutable fields of one workout, comments
// included. The caller must own the record.
func (ctl *WorkoutController) UpdateWorkout(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid workout id")
		return
	}

	var input WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	workout, err := ctl.svc.UpdateWorkout(userID, id, input.fields())
	if err != nil {
		respondServiceError(c, err, "update workout")
		return
	}

	c.JSON(http.StatusOK, workout.Serialize())
}

// DeleteWorkout removes one workout and returns its last serialized form.
// The caller must own the record.
func (ctl *WorkoutController) DeleteWorkout(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid workout id")
		return
	}

	workout, err := ctl.svc.DeleteWorkout(userID, id)
	if err != nil {
		respondServiceError(c, err, "delete workout")
		return
	}

	c.JSON(http.StatusOK, workout.Serialize())
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

func respondServiceError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, services.ErrWorkoutNotFound):
		respondError(c, http.StatusNotFound, "Workout not found")
	case errors.Is(err, services.ErrNotOwner):
		respondError(c, http.StatusForbidden, "Workout belongs to another user")
	default:
		log.Printf("%s: %v", op, err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// respondError writes the {code, message} failure body shared by every route.
func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"code": code, "message": message})
}
