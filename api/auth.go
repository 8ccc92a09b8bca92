package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vadibank/vadi"
	model2 "github.com/vadibank/vadi/api/model"
)

func (a Api) Register(c *gin.Context) {
	var req model2.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	otp := a.vadi.IssueOTP(vadiRegistrationForm(req))
	// The code is returned in the response body; this is a simulation and
	// there is no delivery channel.
	c.JSON(http.StatusCreated, gin.H{"otp": otp})
}

func (a Api) VerifyRegistration(c *gin.Context) {
	var req model2.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	if err := a.vadi.VerifyOTP(req.OTP); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"registered": true})
}

func (a Api) Login(c *gin.Context) {
	var req model2.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	if err := a.vadi.RequestLoginOTP(req.Identifier); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"challenge_issued": true})
}

func (a Api) VerifyLogin(c *gin.Context) {
	var req model2.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	if err := a.vadi.VerifyLoginOTP(req.OTP); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}

func (a Api) Logout(c *gin.Context) {
	a.vadi.Logout()
	c.JSON(http.StatusOK, gin.H{"authenticated": false})
}

func (a Api) ApproveKYC(c *gin.Context) {
	if err := a.vadi.ApproveKYC(); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"kyc_approved": true})
}

func (a Api) ToggleBiometric(c *gin.Context) {
	var req model2.BiometricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}
	a.vadi.ToggleBiometric(req.Enabled)
	c.JSON(http.StatusOK, gin.H{"biometric_lock": req.Enabled})
}

func vadiRegistrationForm(req model2.RegisterRequest) vadi.RegistrationForm {
	return vadi.RegistrationForm{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
	}
}
