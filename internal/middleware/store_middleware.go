package middleware

import (
	"github.com/adityaraj/fuelflow/internal/store"
	"github.com/adityaraj/fuelflow/internal/tokens"
	"github.com/gin-gonic/gin"
)

func StoreMiddleware(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("store", s)
		c.Next()
	}
}

func GetStore(c *gin.Context) store.Store {
	s, exists := c.Get("store")
	if !exists {
		return nil
	}
	return s.(store.Store)
}

func GeneratorMiddleware(g *tokens.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("generator", g)
		c.Next()
	}
}

func GetGenerator(c *gin.Context) *tokens.Generator {
	g, exists := c.Get("generator")
	if !exists {
		return nil
	}
	return g.(*tokens.Generator)
}
