package controllers

import (
	"net/http"

	"github.com/envelope-zero/planner/pkg/budget"
	"github.com/envelope-zero/planner/pkg/httperrors"
	"github.com/envelope-zero/planner/pkg/httputil"
	"github.com/envelope-zero/planner/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsTransactions)
		r.POST("", co.CreateTransaction)
	}
	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
	}
}

// OptionsTransactions returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Transactions
//	@Success		204
//	@Router			/v1/transactions [options]
func (co Controller) OptionsTransactions(c *gin.Context) {
	httputil.OptionsPost(c)
}

// OptionsTransactionDetail returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Transactions
//	@Success		204
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/transactions/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

// CreateTransaction logs a transaction against a plan
//
//	@Summary		Log transaction
//	@Description	Logs a transaction and applies it to the plan of the user for the month. A plan without income is created if there is none.
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Success		201			{object}	TransactionCreateResponse
//	@Failure		400			{object}	httperrors.HTTPError
//	@Failure		500			{object}	httperrors.HTTPError
//	@Param			transaction	body		budget.TransactionRequest	true	"Transaction"
//	@Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var req budget.TransactionRequest
	if err := httputil.BindData(c, &req); err != nil {
		httperrors.Handler(c, err)
		return
	}

	result, err := co.Engine.LogTransaction(c.Request.Context(), req)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransactionCreateResponse{Data: newTransactionResult(result)})
}

// GetTransaction returns a specific transaction
//
//	@Summary		Get transaction
//	@Description	Returns a specific transaction
//	@Tags			Transactions
//	@Produce		json
//	@Success		200	{object}	TransactionResponse
//	@Failure		400	{object}	httperrors.HTTPError
//	@Failure		404	{object}	httperrors.HTTPError
//	@Failure		500	{object}	httperrors.HTTPError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	transaction, ok, err := co.Engine.Transaction(c.Request.Context(), id)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	if !ok {
		httperrors.Handler(c, models.ErrTransactionNotFound)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: transaction})
}
