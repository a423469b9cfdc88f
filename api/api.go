package api

import (
	"github.com/lendflow-finance/lendflow/config"

	"github.com/lendflow-finance/lendflow/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/lendflow-finance/lendflow"
)

type Api struct {
	lendflow *lendflow.Lendflow
	router   *gin.Engine
}

func (a Api) Router() *gin.Engine {
	router := a.router
	router.POST("/applications", a.CreateApplication)
	router.GET("/applications/:id", a.GetApplication)
	router.DELETE("/applications/:id", a.ResetApplication)

	router.POST("/applications/:id/selections", a.ApplySelections)
	router.PATCH("/applications/:id/fields", a.UpdateFields)
	router.GET("/applications/:id/visibility", a.GetVisibility)

	router.POST("/applications/:id/advance", a.Advance)
	router.POST("/applications/:id/retreat", a.Retreat)
	router.POST("/applications/:id/jump", a.JumpTo)

	router.GET("/applications/:id/offer", a.GetOffer)
	router.GET("/applications/:id/summary", a.GetLoanSummary)
	router.POST("/applications/:id/accept", a.AcceptLoan)

	router.POST("/applications/:id/documents/:doc/verify", a.VerifyDocument)
	router.POST("/applications/:id/bank-account/verify", a.VerifyBankAccount)

	router.POST("/applications/:id/otp/send", a.SendOTP)
	router.POST("/applications/:id/otp/resend", a.ResendOTP)
	router.POST("/applications/:id/otp/verify", a.VerifyOTP)

	return a.router
}

func NewAPI(l *lendflow.Lendflow) *Api {
	gin.SetMode(gin.ReleaseMode)
	conf, err := config.Fetch()
	if err != nil {
		return nil
	}
	r := gin.Default()
	if conf.Server.Secure {
		r.Use(middleware.SecretKeyAuthMiddleware())
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, "server running...")
	})

	return &Api{lendflow: l, router: r}
}
