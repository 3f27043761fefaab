package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pedidos/backend/internal/application/finance"
)

// AccountHandler serves the account movement endpoints: charges, payments,
// balance and statement, all scoped under one customer
type AccountHandler struct {
	BaseHandler
	accountService *finance.AccountService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService *finance.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// RegisterRoutes registers account routes
func (h *AccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	account := rg.Group("/customers/:id")
	{
		account.POST("/debts", h.CreateDebt)
		account.GET("/debts", h.ListDebts)
		account.PUT("/debts/:debtId", h.UpdateDebt)
		account.DELETE("/debts/:debtId", h.DeleteDebt)

		account.POST("/payments", h.CreatePayment)
		account.GET("/payments", h.ListPayments)
		account.PUT("/payments/:paymentId", h.UpdatePayment)
		account.DELETE("/payments/:paymentId", h.DeletePayment)

		account.GET("/balance", h.Balance)
		account.GET("/statement", h.Statement)
	}
}

// CreateDebt records a charge on the customer's account
func (h *AccountHandler) CreateDebt(c *gin.Context) {
	var req finance.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.accountService.CreateDebt(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListDebts returns the customer's charges
func (h *AccountHandler) ListDebts(c *gin.Context) {
	resp, err := h.accountService.ListDebts(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateDebt corrects an existing charge
func (h *AccountHandler) UpdateDebt(c *gin.Context) {
	var req finance.UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.accountService.UpdateDebt(c.Request.Context(), c.Param("id"), c.Param("debtId"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteDebt removes a charge permanently
func (h *AccountHandler) DeleteDebt(c *gin.Context) {
	if err := h.accountService.DeleteDebt(c.Request.Context(), c.Param("id"), c.Param("debtId")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreatePayment records money received from the customer
func (h *AccountHandler) CreatePayment(c *gin.Context) {
	var req finance.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.accountService.CreatePayment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListPayments returns the customer's payments
func (h *AccountHandler) ListPayments(c *gin.Context) {
	resp, err := h.accountService.ListPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdatePayment corrects an existing payment
func (h *AccountHandler) UpdatePayment(c *gin.Context) {
	var req finance.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.accountService.UpdatePayment(c.Request.Context(), c.Param("id"), c.Param("paymentId"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeletePayment removes a payment permanently
func (h *AccountHandler) DeletePayment(c *gin.Context) {
	if err := h.accountService.DeletePayment(c.Request.Context(), c.Param("id"), c.Param("paymentId")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Balance returns the customer's aggregated account position
func (h *AccountHandler) Balance(c *gin.Context) {
	resp, err := h.accountService.Balance(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Statement returns the rendered estado de cuenta with its wa.me link
func (h *AccountHandler) Statement(c *gin.Context) {
	resp, err := h.accountService.Statement(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
