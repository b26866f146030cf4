package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the error envelope every handler writes.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail Detail `json:"detail"`
}

// Detail is the machine readable part of an error body. Retryable tells the
// client the same request may succeed later.
type Detail struct {
	Code      string `json:"code"`
	Retryable bool   `json:"retryable,omitempty"`
}

// AbortWithError writes the envelope and records err on the context so the
// error middleware can log it with its cause chain.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail Detail) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func Internal(c *gin.Context, err error) {
	AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", Detail{Code: "internal"})
}
