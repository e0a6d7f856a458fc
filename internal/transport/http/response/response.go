package response

import "github.com/gin-gonic/gin"

// ErrorBody is the wire shape for every failure: {"error": "..."}.
type ErrorBody struct {
	Error string `json:"error"`
}

func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorBody{Error: msg})
}

// Abort writes the error body and stops the handler chain; middlewares use
// this so downstream handlers never run on a rejected request.
func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: msg})
}
