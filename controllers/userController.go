package controllers

import (
	"net/http"
	"time"

	"github.com/Sri-Charith/AI-HealthVault/helpers"
	"github.com/Sri-Charith/AI-HealthVault/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// UserController handles signup, login and token refresh.
type UserController struct {
	users  *mongo.Collection
	tokens *helpers.TokenManager
}

func NewUserController(users *mongo.Collection, tokens *helpers.TokenManager) *UserController {
	return &UserController{users: users, tokens: tokens}
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func verifyPassword(hashed, provided string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(provided)) == nil
}

// SignUp registers a new user. Email uniqueness is enforced by the unique
// index, so a duplicate insert fails cleanly instead of racing the count.
func (ctl *UserController) SignUp() gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.BindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		count, err := ctl.users.CountDocuments(ctx, bson.M{"email": user.Email})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error while checking email"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
			return
		}

		hashed, err := hashPassword(*user.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error while hashing password"})
			return
		}
		user.Password = &hashed

		user.ID = primitive.NewObjectID()
		user.UserID = user.ID.Hex()
		user.CreatedAt = time.Now()
		user.UpdatedAt = time.Now()
		if user.Goals == nil {
			user.Goals = []string{}
		}

		token, refreshToken, err := ctl.tokens.GenerateAllTokens(*user.Email, *user.FirstName, *user.LastName, user.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating tokens"})
			return
		}
		user.Token = &token
		user.RefreshToken = &refreshToken

		if _, err := ctl.users.InsertOne(ctx, user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error while creating user"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"user_id":       user.UserID,
			"token":         token,
			"refresh_token": refreshToken,
		})
	}
}

// Login verifies credentials and issues a fresh token pair.
func (ctl *UserController) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Email    string `json:"email" validate:"required,email"`
			Password string `json:"password" validate:"required"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		var user models.User
		if err := ctl.users.FindOne(ctx, bson.M{"email": body.Email}).Decode(&user); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		if user.Password == nil || !verifyPassword(*user.Password, body.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}

		token, refreshToken, err := ctl.tokens.GenerateAllTokens(*user.Email, *user.FirstName, *user.LastName, user.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating tokens"})
			return
		}

		update := bson.M{"$set": bson.M{
			"token":         token,
			"refresh_token": refreshToken,
			"updated_at":    time.Now(),
		}}
		if _, err := ctl.users.UpdateOne(ctx, bson.M{"user_id": user.UserID}, update); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error while updating tokens"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user_id":       user.UserID,
			"first_name":    user.FirstName,
			"token":         token,
			"refresh_token": refreshToken,
		})
	}
}

// RefreshToken exchanges a valid refresh token for a new token pair.
func (ctl *UserController) RefreshToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			RefreshToken string `json:"refresh_token" validate:"required"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		claims, err := ctl.tokens.ValidateToken(body.RefreshToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired refresh token"})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		var user models.User
		if err := ctl.users.FindOne(ctx, bson.M{"user_id": claims.UserID}).Decode(&user); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}
		if user.RefreshToken == nil || *user.RefreshToken != body.RefreshToken {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh token no longer valid"})
			return
		}

		token, refreshToken, err := ctl.tokens.GenerateAllTokens(*user.Email, *user.FirstName, *user.LastName, user.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating tokens"})
			return
		}

		update := bson.M{"$set": bson.M{
			"token":         token,
			"refresh_token": refreshToken,
			"updated_at":    time.Now(),
		}}
		if _, err := ctl.users.UpdateOne(ctx, bson.M{"user_id": user.UserID}, update); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error while updating tokens"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":         token,
			"refresh_token": refreshToken,
		})
	}
}
