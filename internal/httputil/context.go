package httputil

import "github.com/gin-gonic/gin"

// ContextURL is the key of the API URL in the gin context.
const ContextURL = "billtrail:url"

// APIURL returns the public URL of the API without a trailing slash.
func APIURL(c *gin.Context) string {
	return c.GetString(ContextURL)
}
