package controllers

import (
	"errors"
	"net/http"

	"github.com/drewlara/gym-notes-api/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{svc: svc}
}

type ProfileInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (ctl *UserController) GetProfile(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	profile, err := ctl.svc.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (ctl *UserController) UpdateProfile(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := ctl.svc.UpdateProfile(userID, input.FirstName, input.LastName); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated successfully"})
}
