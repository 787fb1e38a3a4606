// Admin dashboard HTTP handlers.
//
//   - POST /admin/login        (exchange password for a session cookie)
//   - POST /admin/logout       (revoke the session server-side)
//   - GET  /admin/visitors     (visitor list + aggregate stats)
//   - GET  /admin/submissions  (contact-form submissions)
//   - GET  /admin/export       (submissions as CSV download)
//
// The read endpoints are guarded by middleware.RequireSession; login and
// logout are reachable without a valid session.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autokursai/landing-api/internal/domain"
	"github.com/autokursai/landing-api/internal/http/middleware"
	"github.com/autokursai/landing-api/internal/i18n"
	"github.com/autokursai/landing-api/internal/repo"
	"github.com/autokursai/landing-api/internal/services"
)

// LoginRequest is the JSON payload for the admin login endpoint.
type LoginRequest struct {
	// Password is the shared admin dashboard password.
	Password string `json:"password" example:"changeme"`
}

// VisitorsResponse wraps the visitor list and aggregate counters.
type VisitorsResponse struct {
	Visitors []domain.Visitor `json:"visitors"`
	Stats    repo.Stats       `json:"stats"`
}

// SubmissionsResponse wraps the contact-form submission list.
type SubmissionsResponse struct {
	Submissions []domain.Submission `json:"submissions"`
}

// Login godoc
// @ID          adminLogin
// @Summary     Log in to the admin dashboard
// @Description Verifies the shared admin password and issues an HttpOnly session cookie valid for the configured TTL.
// @Tags        Admin
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.LoginRequest  true  "Login payload"
//
// @Success     200  {object}  handlers.SuccessResponse
// @Header      200  {string}  Set-Cookie  "admin_session=<token>; HttpOnly; SameSite=Strict"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Wrong password"
// @Router      /admin/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, localize(c, i18n.MsgLoginFailed))
		return
	}

	token, err := h.authSvc.Login(req.Password)
	if err != nil {
		if errors.Is(err, services.ErrBadPassword) {
			fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, localize(c, i18n.MsgBadPassword))
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeLoginFailed, localize(c, i18n.MsgLoginFailed))
		return
	}

	h.setSessionCookie(c, token, int(h.cookie.TTL.Seconds()))
	ok(c, http.StatusOK, SuccessResponse{Success: true})
}

// Logout godoc
// @ID          adminLogout
// @Summary     Log out of the admin dashboard
// @Description Revokes the current session server-side and clears the session cookie. Succeeds even when no session is present.
// @Tags        Admin
// @Produce     json
//
// @Success     204  {string}  string  "No Content"
// @Router      /admin/logout [post]
func (h *Handlers) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		h.authSvc.Logout(token)
	}
	h.setSessionCookie(c, "", -1)
	noContent(c)
}

// Visitors godoc
// @ID          adminVisitors
// @Summary     List visitors with stats
// @Description Returns every tracked visitor, most recent first, plus unique, total, and today counters.
// @Tags        Admin
// @Produce     json
//
// @Success     200  {object}  handlers.VisitorsResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/visitors [get]
func (h *Handlers) Visitors(c *gin.Context) {
	visitors, stats, err := h.dashSvc.Overview(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, localize(c, i18n.MsgVisitorsFailed))
		return
	}
	ok(c, http.StatusOK, VisitorsResponse{Visitors: visitors, Stats: stats})
}

// Submissions godoc
// @ID          adminSubmissions
// @Summary     List contact-form submissions
// @Description Returns every submission, newest first.
// @Tags        Admin
// @Produce     json
//
// @Success     200  {object}  handlers.SubmissionsResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/submissions [get]
func (h *Handlers) Submissions(c *gin.Context) {
	subs, err := h.dashSvc.Submissions(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, localize(c, i18n.MsgSubmissionsFailed))
		return
	}
	ok(c, http.StatusOK, SubmissionsResponse{Submissions: subs})
}

// Export godoc
// @ID          adminExport
// @Summary     Export submissions as CSV
// @Description Streams all submissions as a CSV attachment. An empty table yields the literal "No data".
// @Tags        Admin
// @Produce     text/csv
//
// @Success     200  {string}  string  "CSV document"
// @Header      200  {string}  Content-Disposition  "attachment; filename=\"submissions.csv\""
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/export [get]
func (h *Handlers) Export(c *gin.Context) {
	csv, err := h.dashSvc.ExportCSV(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeExportFailed, localize(c, i18n.MsgExportFailed))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="submissions.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}

// setSessionCookie issues (or clears, with maxAge < 0) the admin session
// cookie: HttpOnly, SameSite Strict, path "/", Secure per configuration.
func (h *Handlers) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", h.cookie.Secure, true)
}
