// Package handler holds the HTTP layer: request binding, response shaping
// and delegation to the services.
package handler

import (
	"errors"
	"net/http"

	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/errorx"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response is the uniform JSON envelope of every endpoint.
type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

// HandleSuccess writes a 200 with the success business code.
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: errorx.CodeSuccess,
		Msg:  "sucesso",
		Data: data,
	})
}

// HandleError maps a service error to the envelope. The HTTP status stays
// 200 for business errors; clients branch on the code field.
func HandleError(c *gin.Context, err error) {
	code := errorx.GetCode(err)
	msg := errorx.ErrServerBusy.Msg
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) {
		msg = codeErr.Msg
	}

	if code == errorx.CodeServerBusy || code == errorx.CodeDBError || code == errorx.CodeCacheError {
		zap.L().Error("erro interno na requisição",
			zap.String("path", c.FullPath()), zap.Error(err))
		// Internal details never reach the client.
		msg = errorx.ErrServerBusy.Msg
	}

	c.JSON(http.StatusOK, Response{Code: code, Msg: msg})
}

// HandleParamError writes the invalid-parameter envelope with a translated
// validation message.
func HandleParamError(c *gin.Context, err error) {
	c.JSON(http.StatusOK, Response{
		Code: errorx.CodeInvalidParam,
		Msg:  translateError(err),
	})
}
