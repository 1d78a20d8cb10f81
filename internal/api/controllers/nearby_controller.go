package controllers

import (
	"github.com/gin-gonic/gin"
	"monumentscout/internal/models/request_models"
	"monumentscout/internal/services"
	"monumentscout/pkg/utils"
)

type NearbyController struct {
	nearbyService services.NearbyServiceInterface
}

func NewNearbyController(nearbyService services.NearbyServiceInterface) *NearbyController {
	return &NearbyController{
		nearbyService: nearbyService,
	}
}

// GET /api/nearby?lat=&lon=&radius=
func (n *NearbyController) GetNearbyHandler(c *gin.Context) {
	req := request_models.NearbyRequest{
		Lat:    c.Query("lat"),
		Lon:    c.Query("lon"),
		Radius: c.Query("radius"),
	}

	places, err := n.nearbyService.SearchNearby(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places)
}
