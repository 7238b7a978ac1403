package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// devCookieMaxAge keeps the dev identity for 30 days.
const devCookieMaxAge = 30 * 24 * 60 * 60

// DevLogin handles GET /api/dev/login?uid=... — the prototype sign-in: it just
// sets the uid cookie. No credentials exist in this stub.
func DevLogin(c *gin.Context) {
	uid := c.Query("uid")
	if uid == "" {
		uid = "user_dev_1"
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("uid", uid, devCookieMaxAge, "/", "", false, false)
	c.JSON(http.StatusOK, gin.H{"ok": true, "uid": uid})
}

// DevLogout handles GET /api/dev/logout, clearing the dev identity cookie.
func DevLogout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("uid", "", -1, "/", "", false, false)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
