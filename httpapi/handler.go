package httpapi

import (
	"bytes"
	"image/png"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/tricks/card"
	"github.com/ratel-online/tricks/model"
	"github.com/ratel-online/tricks/service"
)

func ListTablesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		list := make([]model.Table, 0)
		for _, table := range service.GetTables() {
			list = append(list, table.Model())
		}
		c.JSON(http.StatusOK, gin.H{"tables": list})
	}
}

func CreateTableHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		table := service.CreateTable()
		c.JSON(http.StatusCreated, gin.H{"table": table.Model()})
	}
}

func GetTableHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		table := service.GetTable(c.Param("id"))
		if table == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "table not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"table": table.Model()})
	}
}

// SeatPacketHandler answers with the exact packet the seat was last sent.
func SeatPacketHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		table := service.GetTable(c.Param("id"))
		if table == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "table not found"})
			return
		}
		seat, err := strconv.Atoi(c.Param("seat"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "seat must be a number"})
			return
		}
		data, err := table.Packet(seat)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/json", data)
	}
}

func CardFaceHandler(faces *card.Faces) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "card must be a number"})
			return
		}
		cc, err := card.New(id)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		face := faces.Face(cc)
		if face == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no face for " + cc.String()})
			return
		}
		buf := bytes.Buffer{}
		if err := png.Encode(&buf, face); err != nil {
			log.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "encode face"})
			return
		}
		c.Data(http.StatusOK, "image/png", buf.Bytes())
	}
}
