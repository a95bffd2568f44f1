package public

import (
	"errors"
	"fmt"

	"github.com/fastbite/fastbite/internal/http/response"
	"github.com/fastbite/fastbite/internal/logger"
	"github.com/fastbite/fastbite/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError binds one service error to a response code and message.
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrItemNotFound, code: response.CodeNotFound, msg: "menu item not found"},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, msg: "quantity must not be negative"},
	{target: service.ErrSessionNotFound, code: response.CodeBadRequest, msg: "session not found"},
}

var menuErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidCategory, code: response.CodeBadRequest, msg: "category does not exist"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrEmptyCart, code: response.CodeBadRequest, msg: "cart is empty"},
	{target: service.ErrSessionNotFound, code: response.CodeBadRequest, msg: "session not found"},
}

var orderLookupErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, msg: "order not found"},
	{target: service.ErrSessionNotFound, code: response.CodeBadRequest, msg: "session not found"},
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackMsg string) {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		response.BadRequest(c, fmt.Sprintf("%s is required", vErr.Field))
		return
	}
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			response.Error(c, rule.code, rule.msg)
			return
		}
	}
	logger.Errorw("request failed", "path", c.FullPath(), "error", err)
	response.Error(c, response.CodeInternal, fallbackMsg)
}
