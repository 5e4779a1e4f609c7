package stories

import (
	"net/http"

	"github.com/MihaiM21/47Gear-sub000/internal/httperr"
	"github.com/gin-gonic/gin"
)

// product stories live in the storefront CMS; this serves the published
// snapshot the frontend reads without authentication
var published = []Story{
	{
		ID:      "st-shiftknob-brass",
		Handle:  "brass-shift-knob",
		Title:   "Machined for the daily shift",
		Excerpt: "How the weighted brass knob went from a one-off lathe job to our best seller.",
	},
	{
		ID:      "st-alcantara-wheel",
		Handle:  "alcantara-wheel",
		Title:   "Rewrapping the wheel",
		Excerpt: "A look inside the trim shop where every steering wheel gets rebuilt by hand.",
	},
	{
		ID:      "st-track-day",
		Handle:  "track-day-kit",
		Title:   "What we pack for a track day",
		Excerpt: "The kit list our team actually runs, from torque wrench to tire chalk.",
	},
}

// serves all published product stories (public read)
func ListHandler(c *gin.Context) {
	c.JSON(http.StatusOK, ListResponse{
		Stories: published,
		Count:   len(published),
	})
}

// serves a single story by handle
func GetHandler(c *gin.Context) {
	handle := c.Param("handle")

	for _, story := range published {
		if story.Handle == handle {
			c.JSON(http.StatusOK, story)
			return
		}
	}

	httperr.NotFound(c, "story")
}
