package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// parseTimeParam reads a query parameter as RFC 3339 or YYYY-MM-DD.
func parseTimeParam(c *gin.Context, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%s is required", name)
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be RFC 3339 or YYYY-MM-DD", name)
	}
	return t, nil
}

// optionalTimeParam is parseTimeParam for parameters that may be absent.
func optionalTimeParam(c *gin.Context, name string) (*time.Time, error) {
	if c.Query(name) == "" {
		return nil, nil
	}
	t, err := parseTimeParam(c, name)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// tenantID returns the business ID the tenant middleware verified.
func tenantID(c *gin.Context) string {
	return c.GetString("businessID")
}
