package routes

import (
	"github.com/gin-gonic/gin"

	usercontroller "github.com/NelushGayashan/demo-api/controllers/user"
	"github.com/NelushGayashan/demo-api/services"
)

func SetupUserRoutes(api *gin.RouterGroup, svc *services.UserService) {
	users := api.Group("/users")
	{
		users.GET("", usercontroller.GetUsers(svc))
		users.GET("/search", usercontroller.SearchUsers(svc))
		users.GET("/countries", usercontroller.GetAllCountries(svc))
		users.GET("/cities", usercontroller.GetAllCities(svc))
		users.GET("/username/:username", usercontroller.GetUserByUsername(svc))
		users.GET("/email/:email", usercontroller.GetUserByEmail(svc))
		users.GET("/country/:country", usercontroller.GetUsersByCountry(svc))
		users.GET("/city/:city", usercontroller.GetUsersByCity(svc))
		users.GET("/status/:status", usercontroller.GetUsersByStatus(svc))
		users.GET("/exists/username/:username", usercontroller.ExistsByUsername(svc))
		users.GET("/exists/email/:email", usercontroller.ExistsByEmail(svc))
		users.GET("/:id", usercontroller.GetUserByID(svc))
		users.POST("", usercontroller.CreateUser(svc))
		users.PUT("/:id", usercontroller.UpdateUser(svc))
		users.DELETE("/:id", usercontroller.DeleteUser(svc))
	}
}
