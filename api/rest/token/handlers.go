package token

import (
	"net/http"

	"github.com/MihaiM21/47Gear-sub000/internal/botcheck"
	"github.com/MihaiM21/47Gear-sub000/internal/httperr"
	"github.com/gin-gonic/gin"
)

// issued alongside form pages so submissions can prove plausible fill time
type Response struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"` // seconds
}

// issues a fresh timing token for form rendering
func IssueHandler(timing *botcheck.TimingTokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, err := timing.Generate()
		if err != nil {
			httperr.InternalError(c, "failed to issue form token", err)
			return
		}

		c.JSON(http.StatusOK, Response{
			Token:     tok,
			ExpiresIn: int(botcheck.DefaultMaxTokenAge.Seconds()),
		})
	}
}
