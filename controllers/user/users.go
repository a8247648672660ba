package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anurag-b72/ecommerce-shopping-backend/auth"
	"github.com/anurag-b72/ecommerce-shopping-backend/errs"
	"github.com/anurag-b72/ecommerce-shopping-backend/models"
	"github.com/anurag-b72/ecommerce-shopping-backend/store"
)

type RegisterUserInput struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Username   string `json:"username"`
	Phone      string `json:"phone" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Email      string `json:"email"`
	ProfileURL string `json:"profile_url"`
}

type UpdateUserInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Username  *string `json:"username"`
	Phone     *string `json:"phone"`
	Password  *string `json:"password"`
	Email     *string `json:"email"`
}

func validPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// POST /user/user-register
func RegisterUser(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if !validPhone(input.Phone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Phone Number should be 10 digits."})
			return
		}

		// Phone is the unique key for users.
		if _, err := users.FindByPhone(c.Request.Context(), input.Phone); err == nil {
			conflict := errs.Conflict("User already exists!")
			c.JSON(errs.HTTPStatus(conflict), gin.H{"error": conflict.Error()})
			return
		} else if !errs.Is(err, errs.KindNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}

		hashed, err := auth.HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}

		profileURL := input.ProfileURL
		if profileURL == "" {
			profileURL = models.DefaultProfileURL
		}

		user := models.User{
			FirstName:  input.FirstName,
			LastName:   input.LastName,
			Username:   input.Username,
			Phone:      input.Phone,
			Password:   hashed,
			Email:      input.Email,
			ProfileURL: profileURL,
			Cart:       []models.CartItem{},
		}

		id, err := users.Insert(c.Request.Context(), user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "New User Registered.", "user_id": id})
	}
}

// GET /user/user-login
func LoginUser(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		phone := c.Query("phone")
		password := c.Query("password")

		user, err := users.FindByPhone(c.Request.Context(), phone)
		if err != nil {
			if errs.Is(err, errs.KindNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Wrong Phone or Password"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
			return
		}

		if !auth.CheckPassword(password, user.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Wrong Password!"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Logged In Successfully!, Welcome " + user.FirstName,
			"user_id": user.ID.Hex(),
		})
	}
}

// GET /user/my-profile
func MyProfile(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errs.Is(err, errs.KindNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not registered!"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// PUT /user/update-user/:user_id
func UpdateUser(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		patch := models.UserPatch{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Username:  input.Username,
			Email:     input.Email,
		}

		if input.Phone != nil {
			if !validPhone(*input.Phone) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Phone Number should be 10 digits."})
				return
			}
			taken, err := users.PhoneInUseByOther(c.Request.Context(), *input.Phone, userID)
			if err != nil {
				c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
				return
			}
			if taken {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Phone Number already registered to a different user."})
				return
			}
			patch.Phone = input.Phone
		}

		if input.Password != nil {
			hashed, err := auth.HashPassword(*input.Password)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
				return
			}
			patch.Password = &hashed
		}

		if err := users.Update(c.Request.Context(), userID, patch); err != nil {
			if errs.Is(err, errs.KindNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User Details Updated"})
	}
}
