package stories

import "github.com/gin-gonic/gin"

// registers public product-story routes
func RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/product-stories", ListHandler)
	api.GET("/product-stories/:handle", GetHandler)
}
