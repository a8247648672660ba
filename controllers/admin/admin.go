package adminController

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anurag-b72/ecommerce-shopping-backend/auth"
	"github.com/anurag-b72/ecommerce-shopping-backend/errs"
	"github.com/anurag-b72/ecommerce-shopping-backend/models"
	"github.com/anurag-b72/ecommerce-shopping-backend/store"
)

type RegisterAdminInput struct {
	FirstName string `json:"admin_first_name" binding:"required"`
	LastName  string `json:"admin_last_name"`
	Username  string `json:"admin_username" binding:"required"`
	Password  string `json:"admin_password" binding:"required"`
	Email     string `json:"email"`
}

// POST /admin/admin-register
func RegisterAdmin(admins store.AdminStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterAdminInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// admin_username is the unique key for admins.
		if _, err := admins.FindByUsername(c.Request.Context(), input.Username); err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Admin already exists!"})
			return
		} else if !errs.Is(err, errs.KindNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register admin"})
			return
		}

		hashed, err := auth.HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register admin"})
			return
		}

		admin := models.Admin{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Username:  input.Username,
			Password:  hashed,
			Email:     input.Email,
			CreatedAt: time.Now(),
		}

		id, err := admins.Insert(c.Request.Context(), admin)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register admin"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "New Admin Created.", "admin_id": id})
	}
}

// GET /admin/admin-login
func LoginAdmin(admins store.AdminStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Query("username")
		password := c.Query("password")

		admin, err := admins.FindByUsername(c.Request.Context(), username)
		if err != nil {
			if errs.Is(err, errs.KindNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Wrong Username or Password"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
			return
		}

		if !auth.CheckPassword(password, admin.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Wrong Password!"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  "Logged In Successfully!, Welcome " + admin.FirstName,
			"admin_id": admin.ID.Hex(),
		})
	}
}

// GET /admin/get-all-users
func GetAllUsers(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := users.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		if len(all) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "No user registered in the system!"})
			return
		}
		c.JSON(http.StatusOK, all)
	}
}

// GET /admin/get-all-admins
func GetAllAdmins(admins store.AdminStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := admins.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch admins"})
			return
		}
		c.JSON(http.StatusOK, all)
	}
}
