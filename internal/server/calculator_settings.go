package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	settingsdomain "github.com/tikitihq/tikiti/internal/settings/domain"
)

const settingsUpdateLimitKey = "ratelimit:settings:update"

func (s *Server) GetCalculatorSettings(c *gin.Context) {
	resp, err := s.settingsSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) UpdateCalculatorSettings(c *gin.Context) {
	result, err := s.settingsLimiter.Allow(c.Request.Context(),
		settingsUpdateLimitKey,
		s.cfg.Checkout.SettingsUpdateRate,
		s.cfg.Checkout.SettingsUpdateBurst,
	)
	if err == nil && !result.Allowed {
		AbortWithError(c, ErrRateLimited)
		return
	}

	var req settingsdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	req.VATPercentage = strings.TrimSpace(req.VATPercentage)
	req.CommissionPercentage = strings.TrimSpace(req.CommissionPercentage)
	req.BookingFeeAmount = strings.TrimSpace(req.BookingFeeAmount)

	resp, err := s.settingsSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.obsMetrics.RecordSettingsUpdate()
	c.JSON(http.StatusOK, resp)
}
