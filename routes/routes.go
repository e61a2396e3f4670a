package routes

import (
    "github.com/drewlara/gym-notes-api/controllers"
    "github.com/drewlara/gym-notes-api/middlewares"
    "github.com/drewlara/gym-notes-api/services"

    "github.com/gin-gonic/gin"
    "gorm.io/gorm"
)

// SetupRouter wires the public auth routes and the token-protected workout
// routes onto a gin engine.
func SetupRouter(db *gorm.DB, secret string) *gin.Engine {
    r := gin.Default()

    authController := controllers.NewAuthController(services.NewAuthService(db, secret))
    userController := controllers.NewUserController(services.NewUserService(db))
    workoutController := controllers.NewWorkoutController(services.NewWorkoutService(db))

    // Public auth routes
    auth := r.Group("/auth")
    {
        auth.POST("/register", authController.Register)
        auth.POST("/login", authController.Login)
    }

    // Protected user routes
    user := r.Group("/user")
    user.Use(middlewares.AuthMiddleware(secret))
    {
        user.GET("/profile", userController.GetProfile)
        user.PUT("/profile", userController.UpdateProfile)
    }

    // Protected workout routes
    api := r.Group("/api")
    api.Use(middlewares.AuthMiddleware(secret))
    {
        api.GET("/workouts", workoutController.ListWorkouts)
        api.POST("/workouts", workoutController.CreateWorkout)
        api.PUT("/workouts/:id", workoutController.UpdateWorkout)
        api.DELETE("/workouts/:id", workoutController.DeleteWorkout)
    }

    return r
}
