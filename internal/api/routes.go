package api

import (
	"net/http"

	"skillsynclab/backend/internal/config"
	"skillsynclab/backend/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the HTTP surface onto the Gin engine.
func SetupRoutes(
	router *gin.Engine,
	corsCfg config.CORSConfig,
	userService service.AdminUserService,
	categoryService service.CategoryService,
	recipeService service.RecipeService,
	planService service.LearningPlanService,
	discussionService service.DiscussionService,
) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = corsCfg.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	userHandler := NewAdminUserHandler(userService)
	categoryHandler := NewCategoryHandler(categoryService)
	recipeHandler := NewRecipeHandler(recipeService)
	planHandler := NewLearningPlanHandler(planService)
	discussionHandler := NewDiscussionHandler(discussionService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	admin := router.Group("/admin")
	{
		admin.POST("/user", userHandler.CreateUser)
		admin.GET("/user", userHandler.GetAllUsers)
		admin.GET("/user/:id", userHandler.GetUserByID)
		admin.PUT("/user/:id", userHandler.UpdateUser)
		admin.DELETE("/user/:id", userHandler.DeleteUser)
		admin.POST("/user/:id/profilePhoto", userHandler.RequestProfilePhotoUpload)
		admin.GET("/user/:id/profilePhoto", userHandler.GetProfilePhoto)

		admin.POST("/login", userHandler.Login)
		admin.GET("/checkEmail", userHandler.CheckEmail)
		admin.POST("/sendVerificationCode", userHandler.SendVerificationCode)
	}

	categories := router.Group("/categories")
	{
		categories.GET("", categoryHandler.GetCategories)
		categories.POST("", categoryHandler.CreateCategory)
		categories.PUT("/:id", categoryHandler.UpdateCategory)
		categories.DELETE("/:id", categoryHandler.DeleteCategory)
	}

	apiGroup := router.Group("/api")
	{
		recipes := apiGroup.Group("/recipes")
		{
			recipes.GET("", recipeHandler.GetAllRecipes)
			recipes.POST("", recipeHandler.CreateRecipe)
			recipes.GET("/:id", recipeHandler.GetRecipeByID)
			recipes.PUT("/:id", recipeHandler.UpdateRecipe)
			recipes.DELETE("/:id", recipeHandler.DeleteRecipe)
		}

		plans := apiGroup.Group("/learning-plans")
		{
			plans.GET("", planHandler.GetAllLearningPlans)
			plans.POST("", planHandler.CreateLearningPlan)
			plans.GET("/:id", planHandler.GetLearningPlanByID)
			plans.PUT("/:id", planHandler.UpdateLearningPlan)
			plans.DELETE("/:id", planHandler.DeleteLearningPlan)
		}

		discussions := apiGroup.Group("/discussions")
		{
			discussions.GET("", discussionHandler.GetAllDiscussions)
			discussions.POST("", discussionHandler.CreateDiscussion)
			discussions.GET("/:id", discussionHandler.GetDiscussionByID)
			discussions.PUT("/:id", discussionHandler.UpdateDiscussion)
			discussions.DELETE("/:id", discussionHandler.DeleteDiscussion)
		}
	}
}
