package db

import (
	"filmoteca/store"

	"github.com/gin-gonic/gin"
)

const storesKey = "stores"

// Use este middleware no setup do gin.
func SetStoresToContext(stores store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(storesKey, stores)
		c.Next()
	}
}

func StoresInstance(c *gin.Context) (store.Stores, bool) {
	v, ok := c.Get(storesKey)
	if !ok {
		return store.Stores{}, false
	}
	stores, ok := v.(store.Stores)
	return stores, ok
}
