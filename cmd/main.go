package main

import (
    "log"
    "os"

    "github.com/drewlara/gym-notes-api/config"
    "github.com/drewlara/gym-notes-api/routes"
)

func main() {
    config.LoadEnv()

    db, err := config.ConnectDatabase()
    if err != nil {
        log.Fatalf("database setup failed: %v", err)
    }

    secret := os.Getenv("JWT_SECRET")
    if secret == "" {
        log.Fatal("JWT_SECRET must be set")
    }

    port := os.Getenv("PORT")
    if port == "" {
        port = "8080"
    }

    r := routes.SetupRouter(db, secret)
    log.Fatal(r.Run(":" + port))
}
