package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	orderdomain "github.com/tikitihq/tikiti/internal/order/domain"
)

func (s *Server) PlaceOrder(c *gin.Context) {
	var req orderdomain.PlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.orderSvc.Place(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (s *Server) GetOrder(c *gin.Context) {
	resp, err := s.orderSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) ListOrderTickets(c *gin.Context) {
	orderID := strings.TrimSpace(c.Param("id"))

	// 404 for unknown orders, not an empty list.
	if _, err := s.orderSvc.GetByID(c.Request.Context(), orderID); err != nil {
		AbortWithError(c, err)
		return
	}

	tickets, err := s.ticketSvc.ListByOrder(c.Request.Context(), orderID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}
