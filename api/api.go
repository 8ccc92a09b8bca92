package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vadibank/vadi"
	"github.com/vadibank/vadi/api/middleware"
	"github.com/vadibank/vadi/config"
	"github.com/vadibank/vadi/internal/apierror"
)

type Api struct {
	vadi   *vadi.Vadi
	router *gin.Engine
}

func NewAPI(v *vadi.Vadi) *Api {
	gin.SetMode(gin.ReleaseMode)
	conf, err := config.Fetch()
	if err != nil {
		return nil
	}

	r := gin.Default()
	r.Use(middleware.RateLimitMiddleware(conf))
	if conf.Server.Secure {
		r.Use(middleware.SecretKeyAuthMiddleware())
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, "server running...")
	})

	return &Api{vadi: v, router: r}
}

func (a Api) Router() *gin.Engine {
	router := a.router

	router.GET("/state", a.GetState)

	router.POST("/auth/register", a.Register)
	router.POST("/auth/register/verify", a.VerifyRegistration)
	router.POST("/auth/login", a.Login)
	router.POST("/auth/login/verify", a.VerifyLogin)
	router.POST("/auth/logout", a.Logout)
	router.POST("/auth/kyc/approve", a.ApproveKYC)
	router.POST("/auth/biometric", a.ToggleBiometric)

	router.POST("/transfers", a.Transfer)
	router.POST("/qr/prefill", a.QRPrefill)
	router.POST("/payments", a.PayBill)

	router.POST("/cards/:id/freeze", a.ToggleCardFreeze)
	router.POST("/cards/:id/controls", a.ToggleCardControl)

	router.GET("/notifications", a.GetNotifications)
	router.POST("/notifications/read", a.MarkNotificationsRead)

	router.GET("/support/messages", a.GetSupportMessages)
	router.POST("/support/messages", a.SendSupportMessage)
	router.GET("/faqs", a.SearchFAQs)

	router.POST("/settings", a.UpdateSettings)
	router.POST("/reset", a.ResetDemo)

	router.GET("/statements/:account_id/export", a.ExportStatement)

	return a.router
}

// abortWithError maps a typed engine error onto the HTTP response.
func abortWithError(c *gin.Context, err error) {
	c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
}
