package api

import (
	"github.com/ctrl-raul/supermechs-workshop-server/internal/constants"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with all API routes mounted under the
// common prefix.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, Version)
		apiRoutes.GET(constants.RouteItems, h.ListItems)
		apiRoutes.GET(constants.RouteItemByName, h.GetItem)

		apiRoutes.POST(constants.RoutePilots, h.RegisterPilot)
		apiRoutes.GET(constants.RoutePilotByUUID, h.GetPilot)
		apiRoutes.GET(constants.RoutePilotEvents, h.GetPilotEvents)

		apiRoutes.POST(constants.RouteQueueJoin, h.JoinQueue)
		apiRoutes.POST(constants.RouteQueueLeave, h.LeaveQueue)
		apiRoutes.POST(constants.RouteQueueVerify, h.SubmitVerification)

		apiRoutes.GET(constants.RouteBattleByID, h.GetBattle)
		apiRoutes.GET(constants.RouteBattlePlots, h.GetBattlePlots)
		apiRoutes.POST(constants.RouteBattleAction, h.SubmitAction)
		apiRoutes.POST(constants.RouteBattleQuit, h.QuitBattle)
	}

	return router
}
