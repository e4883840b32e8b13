package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zahub/admin-api/router"
	"github.com/zahub/admin-api/utils"
)

// El límite global por IP cubre las rutas registradas en SetupRouter.
func TestRateLimiterGlobalAplica(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	r := router.SetupRouter(db)

	for i := 0; i < 50; i++ {
		w := doJSON(t, r, http.MethodGet, "/ping", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
