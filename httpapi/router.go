package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/ratel-online/tricks/card"
)

// NewRouter serves the inspection API. faces may be nil when no face sheet
// was loaded.
func NewRouter(faces *card.Faces) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/tables", ListTablesHandler())
	r.POST("/tables", CreateTableHandler())
	r.GET("/tables/:id", GetTableHandler())
	r.GET("/tables/:id/seats/:seat/packet", SeatPacketHandler())
	r.GET("/cards/:id/face", CardFaceHandler(faces))

	return r
}
