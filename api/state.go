package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	model2 "github.com/vadibank/vadi/api/model"
	"github.com/vadibank/vadi/model"
)

func (a Api) GetState(c *gin.Context) {
	state, err := a.vadi.Snapshot()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (a Api) GetNotifications(c *gin.Context) {
	state, err := a.vadi.Snapshot()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, state.Notifications)
}

func (a Api) MarkNotificationsRead(c *gin.Context) {
	changed := a.vadi.MarkNotificationsRead()
	c.JSON(http.StatusOK, gin.H{"marked_read": changed})
}

func (a Api) GetSupportMessages(c *gin.Context) {
	state, err := a.vadi.Snapshot()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, state.SupportChat)
}

func (a Api) SendSupportMessage(c *gin.Context) {
	var req model2.SupportMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	appended := a.vadi.SendSupportMessage(req.Message)
	c.JSON(http.StatusCreated, gin.H{"messages": appended})
}

func (a Api) SearchFAQs(c *gin.Context) {
	c.JSON(http.StatusOK, a.vadi.SearchFAQs(c.Query("q")))
}

func (a Api) UpdateSettings(c *gin.Context) {
	var req model2.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	settings := model.Settings{
		Language:      req.Language,
		Theme:         req.Theme,
		Notifications: req.Notifications,
	}
	if err := a.vadi.UpdateSettings(settings); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (a Api) ResetDemo(c *gin.Context) {
	a.vadi.ResetDemo()
	c.JSON(http.StatusOK, gin.H{"reset": true})
}

func (a Api) ExportStatement(c *gin.Context) {
	accountID, passed := c.Params.Get("account_id")
	if !passed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "account_id is required. pass id in the route /:account_id"})
		return
	}

	format := c.DefaultQuery("format", "csv")
	switch format {
	case "csv":
		data, err := a.vadi.ExportStatementCSV(accountID)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.Header("Content-Disposition", "attachment; filename=statement.csv")
		c.Data(http.StatusOK, "text/csv", data)
	case "pdf":
		data, err := a.vadi.ExportStatementPDF(accountID)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.Header("Content-Disposition", "attachment; filename=statement.pdf")
		c.Data(http.StatusOK, "application/pdf", data)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported format: " + format})
	}
}
