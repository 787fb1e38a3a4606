// Visit-tracking HTTP handler.
//
//   - POST /track  (record a landing-page visit)
//
// The endpoint is fire-and-forget from the page's point of view: the response
// carries no visitor data, only an acknowledgment.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autokursai/landing-api/internal/geo"
	"github.com/autokursai/landing-api/internal/http/middleware"
	"github.com/autokursai/landing-api/internal/i18n"
)

// TrackVisit godoc
// @ID          trackVisit
// @Summary     Record a landing-page visit
// @Description Classifies the caller's device and city, then upserts the visitor row keyed by client IP. Repeat visits increment the counter.
// @Tags        Tracking
// @Produce     json
//
// @Param       User-Agent       header  string  false "Browser user agent used for device classification"
// @Param       X-Forwarded-For  header  string  false "Client IP chain set by the reverse proxy"
//
// @Success     200  {object}  handlers.SuccessResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /track [post]
func (h *Handlers) TrackVisit(c *gin.Context) {
	ip := ClientIP(c)
	ua := c.Request.UserAgent()

	if err := h.trackSvc.Record(c.Request.Context(), ip, ua); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeTrackFailed, localize(c, i18n.MsgTrackFailed))
		return
	}
	middleware.CountVisit(geo.DeviceType(ua))
	ok(c, http.StatusOK, SuccessResponse{Success: true})
}
