package usercontroller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NelushGayashan/demo-api/models"
	"github.com/NelushGayashan/demo-api/repository"
	"github.com/NelushGayashan/demo-api/services"
)

// GetUsers lists users with optional filters: country, city, status.
func GetUsers(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := services.UserFilter{
			Country: c.Query("country"),
			City:    c.Query("city"),
			Status:  c.Query("status"),
		}

		users, err := svc.GetUsers(filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error("Failed to fetch users"))
			return
		}
		c.Header("X-Total-Count", strconv.Itoa(len(users)))
		c.JSON(http.StatusOK, models.Success(users, "Users retrieved successfully"))
	}
}

func GetUserByID(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.Error("Invalid user ID"))
			return
		}

		user, err := svc.GetUserByID(uint(id))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.Error(fmt.Sprintf("User not found with id: %d", id)))
			} else {
				c.JSON(http.StatusInternalServerError, models.Error("Failed to retrieve user"))
			}
			return
		}
		c.JSON(http.StatusOK, models.Success(user, "User found"))
	}
}

func GetUserByUsername(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")

		user, err := svc.GetUserByUsername(username)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.Error("User not found with username: "+username))
			} else {
				c.JSON(http.StatusInternalServerError, models.Error("Failed to retrieve user"))
			}
			return
		}
		c.JSON(http.StatusOK, models.Success(user, "User found"))
	}
}

func GetUserByEmail(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")

		user, err := svc.GetUserByEmail(email)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.Error("User not found with email: "+email))
			} else {
				c.JSON(http.StatusInternalServerError, models.Error("Failed to retrieve user"))
			}
			return
		}
		c.JSON(http.StatusOK, models.Success(user, "User found"))
	}
}

// SearchUsers matches the full name case-insensitively.
// Query param: name (required).
func SearchUsers(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Query("name")
		if name == "" {
			c.JSON(http.StatusBadRequest, models.Error("Query parameter 'name' is required"))
			return
		}

		users, err := svc.SearchUsersByName(name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error("Failed to search users"))
			return
		}
		c.Header("X-Total-Count", strconv.Itoa(len(users)))
		c.JSON(http.StatusOK, models.Success(users, "Search completed"))
	}
}

func GetUsersByCountry(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		country := c.Param("country")

		users, err := svc.GetUsersByCountry(country)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error("Failed to fetch users"))
			return
		}
		c.Header("X-Total-Count", strconv.Itoa(len(users)))
		c.JSON(http.StatusOK, models.Success(users, "Users retrieved for country: "+country))
	}
}

func GetUsersByCity(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		city := c.Param("city")

		users, err := svc.GetUsersByCity(city)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error("Failed to fetch users"))
			return
		}
		c.Header("X-Total-Count", strconv.Itoa(len(users)))
		c.JSON(http.StatusOK, models.Success(users, "Users retrieved for city: "+city))
	}
}

func GetUsersByStatus(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Param("status")

		users, err := svc.GetUsersByStatus(status)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error("Failed to fetch users"))
			return
		}
		c.Header("X-Total-Count", strconv.Itoa(len(users)))
		c.JSON(http.StatusOK, models.Success(users, "Users retrieved for status: "+status))
	}
}

func GetAllCountries(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		countries, err := svc.GetAllCountries()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error("Failed to fetch countries"))
			return
		}
		c.JSON(http.StatusOK, models.Success(countries, "Countries retrieved successfully"))
	}
}

func GetAllCities(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cities, err := svc.GetAllCities()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error("Failed to fetch cities"))
			return
		}
		c.JSON(http.StatusOK, models.Success(cities, "Cities retrieved successfully"))
	}
}

// ExistsByUsername is a pre-validation probe for registration flows.
func ExistsByUsername(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")

		exists, err := svc.ExistsByUsername(username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error("Failed to check username"))
			return
		}
		c.JSON(http.StatusOK, models.Success(gin.H{"exists": exists}, "Username availability checked"))
	}
}

// ExistsByEmail is a pre-validation probe for registration flows.
func ExistsByEmail(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")

		exists, err := svc.ExistsByEmail(email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error("Failed to check email"))
			return
		}
		c.JSON(http.StatusOK, models.Success(gin.H{"exists": exists}, "Email availability checked"))
	}
}

// CreateUser registers a new user.
func CreateUser(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, models.Error("Invalid user payload: "+err.Error()))
			return
		}

		created, err := svc.CreateUser(&user)
		if err != nil {
			if errors.Is(err, repository.ErrConflict) {
				c.JSON(http.StatusConflict, models.Error("User with this username or email already exists"))
			} else {
				c.JSON(http.StatusInternalServerError, models.Error("Failed to create user"))
			}
			return
		}

		c.Header("Location", fmt.Sprintf("/api/v1/users/%d", created.ID))
		c.JSON(http.StatusCreated, models.Success(created, "User created successfully"))
	}
}

// UpdateUser replaces an existing user's fields with the payload.
func UpdateUser(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.Error("Invalid user ID"))
			return
		}

		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, models.Error("Invalid user payload: "+err.Error()))
			return
		}

		updated, err := svc.UpdateUser(uint(id), user)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrNotFound):
				c.JSON(http.StatusNotFound, models.Error(fmt.Sprintf("User not found with id: %d", id)))
			case errors.Is(err, repository.ErrConflict):
				c.JSON(http.StatusConflict, models.Error("User with this username or email already exists"))
			default:
				c.JSON(http.StatusInternalServerError, models.Error("Failed to update user"))
			}
			return
		}

		c.JSON(http.StatusOK, models.Success(updated, "User updated successfully"))
	}
}

// DeleteUser removes a user from the system.
func DeleteUser(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.Error("Invalid user ID"))
			return
		}

		deleted, err := svc.DeleteUser(uint(id))
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error("Failed to delete user"))
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, models.Error(fmt.Sprintf("User not found with id: %d", id)))
			return
		}
		c.JSON(http.StatusOK, models.Success(nil, "User deleted successfully"))
	}
}
