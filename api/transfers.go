package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vadibank/vadi"
	model2 "github.com/vadibank/vadi/api/model"
)

func (a Api) Transfer(c *gin.Context) {
	var req model2.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	txn, err := a.vadi.TransferByIBAN(vadi.TransferRequest{
		FromAccountID: req.FromAccountID,
		IBAN:          req.IBAN,
		Amount:        req.Amount,
		Description:   req.Description,
		Fast:          req.Fast,
		RecipientName: req.RecipientName,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, txn)
}

func (a Api) PayBill(c *gin.Context) {
	var req model2.BillPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	txn, err := a.vadi.PayBill(vadi.BillPaymentRequest{
		BillerID:      req.BillerID,
		AccountNumber: req.AccountNumber,
		Amount:        req.Amount,
		Autopay:       req.Autopay,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, txn)
}

func (a Api) QRPrefill(c *gin.Context) {
	var req model2.QRPrefillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	prefill := vadi.ApplyQRPayload(req.Payload)
	if prefill == nil {
		// Nothing to prefill is not an error by contract.
		c.JSON(http.StatusOK, gin.H{"prefill": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"prefill": prefill})
}
