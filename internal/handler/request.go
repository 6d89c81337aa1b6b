package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-learning-planner/internal/service/slot"
)

// UserIDHeader carries the authenticated user id, set by the gateway in front of
// this service.
const UserIDHeader = "X-User-ID"

type clock struct {
	loc *time.Location
	now func() time.Time
}

func newClock(loc *time.Location) clock {
	if loc == nil {
		loc = time.UTC
	}
	return clock{
		loc: loc,
		now: time.Now,
	}
}

func (k clock) Now() time.Time {
	return k.now().In(k.loc)
}

// week resolves the ?week=YYYY-MM-DD query to the Monday starting that week. Without
// the query the current week is used.
func (k clock) week(c *gin.Context) (time.Time, bool) {
	raw := c.Query("week")
	if raw == "" {
		return slot.WeekStart(k.Now()), true
	}
	d, err := time.ParseInLocation(time.DateOnly, raw, k.loc)
	if err != nil {
		respondBadRequest(c, "invalid week format, expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return slot.WeekStart(d), true
}

func requireUserID(c *gin.Context) (string, bool) {
	id := c.GetHeader(UserIDHeader)
	if id == "" {
		respondBadRequest(c, UserIDHeader+" header is required")
		return "", false
	}
	return id, true
}
