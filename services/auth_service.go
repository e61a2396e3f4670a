package services

import (
    "errors"

    "github.com/drewlara/gym-notes-api/models"
    "github.com/drewlara/gym-notes-api/utils"

    "gorm.io/gorm"
)

var ErrUsernameTaken = errors.New("username already taken")

type AuthService struct {
    db     *gorm.DB
    secret string
}

func NewAuthService(db *gorm.DB, secret string) *AuthService {
    return &AuthService{db: db, secret: secret}
}

// RegisterUser stores a new user with a bcrypt-hashed password.
func (s *AuthService) RegisterUser(username, password, firstName, lastName string) error {
    var existing models.User
    err := s.db.Where("username = ?", username).First(&existing).Error
    if err == nil {
        return ErrUsernameTaken
    }
    if !errors.Is(err, gorm.ErrRecordNotFound) {
        return err
    }

    hashedPassword, err := utils.HashPassword(password)
    if err != nil {
        return err
    }

    user := models.User{
        Username:  username,
        Password:  hashedPassword,
        FirstName: firstName,
        LastName:  lastName,
    }

    return s.db.Create(&user).Error
}

// AuthenticateUser checks credentials and issues a signed token.
func (s *AuthService) AuthenticateUser(username, password string) (string, error) {
    var user models.User
    if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
        return "", errors.New("user not found")
    }

    if !utils.CheckPasswordHash(password, user.Password) {
        return "", errors.New("incorrect password")
    }

    return utils.GenerateJWT(user.ID, user.Username, s.secret)
}
