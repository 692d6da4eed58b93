package utils

import "github.com/gin-gonic/gin"

// RespondJSON envia uma resposta de sucesso com o corpo informado.
func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// RespondError envia um erro no formato {"error": string}, com o código HTTP
// derivado da taxonomia de erros (ver errors.go).
func RespondError(c *gin.Context, err error) {
	c.JSON(HTTPStatus(err), gin.H{"error": err.Error()})
}
