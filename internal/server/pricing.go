package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	pricingdomain "github.com/tikitihq/tikiti/internal/pricing/domain"
)

func (s *Server) EstimatePricing(c *gin.Context) {
	var req pricingdomain.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	req.TicketPrice = strings.TrimSpace(req.TicketPrice)
	req.CommissionPayer = strings.TrimSpace(req.CommissionPayer)
	req.BookingPayer = strings.TrimSpace(req.BookingPayer)

	resp, err := s.pricingSvc.Estimate(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.obsMetrics.RecordEstimate()
	c.JSON(http.StatusOK, resp)
}
