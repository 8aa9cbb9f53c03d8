package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lalith-99/chatbook/internal/models"
	"github.com/lalith-99/chatbook/internal/repository/memory"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// TestScenario drives the real in-memory directory through the HTTP routes.
func TestScenario(t *testing.T) {
	req := require.New(t)

	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	logger := zaptest.NewLogger(t)
	srv := gin.New()
	RegisterRoutes(srv, memory.NewDirectory(logger, memory.WithClock(tick)), logger)

	for i, name := range []string{"Alex", "Bob", "Charlie", "Dan", "Evan"} {
		body := fmt.Sprintf(`{"name":%q,"contact":"90000000%02d"}`, name, i)
		rec := do(srv, http.MethodPost, "/v1/users", body)
		req.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := do(srv, http.MethodPost, "/v1/users", `{"name":"Zoe","contact":"9000000000"}`)
	req.Equal(http.StatusConflict, rec.Code)

	var group models.Group
	rec = do(srv, http.MethodPost, "/v1/groups", `{"members":["Alex","Bob","Charlie"]}`)
	req.Equal(http.StatusCreated, rec.Code)
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &group))
	req.Equal("Group 1", group.Name)

	var chat models.Group
	rec = do(srv, http.MethodPost, "/v1/groups", `{"members":["Dan","Evan"]}`)
	req.Equal(http.StatusCreated, rec.Code)
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &chat))
	req.Equal("Evan", chat.Name)

	groupPath := "/v1/groups/" + group.ID.String()

	send := func(content, sender, path string) *httptest.ResponseRecorder {
		var created struct {
			ID int64 `json:"id"`
		}
		rec := do(srv, http.MethodPost, "/v1/messages", fmt.Sprintf(`{"content":%q}`, content))
		req.Equal(http.StatusCreated, rec.Code)
		req.NoError(json.Unmarshal(rec.Body.Bytes(), &created))
		return do(srv, http.MethodPost, path+"/messages", fmt.Sprintf(`{"message_id":%d,"sender":%q}`, created.ID, sender))
	}

	before := clock
	rec = send("hi from Bob", "Bob", groupPath)
	req.Equal(http.StatusOK, rec.Code)
	req.JSONEq(`{"count":1}`, rec.Body.String())

	rec = send("again from Bob", "Bob", groupPath)
	req.JSONEq(`{"count":2}`, rec.Body.String())

	rec = send("from Dan", "Dan", "/v1/groups/"+chat.ID.String())
	req.JSONEq(`{"count":1}`, rec.Body.String())

	rec = send("intruder", "Dan", groupPath)
	req.Equal(http.StatusForbidden, rec.Code)

	search := func(k int) *httptest.ResponseRecorder {
		q := url.Values{}
		q.Set("start", before.Format(time.RFC3339))
		q.Set("end", clock.Add(time.Hour).Format(time.RFC3339))
		q.Set("k", fmt.Sprint(k))
		return do(srv, http.MethodGet, "/v1/messages/search?"+q.Encode(), "")
	}
	rec = search(2)
	req.Equal(http.StatusOK, rec.Code)
	req.JSONEq(`{"content":"again from Bob"}`, rec.Body.String())

	rec = do(srv, http.MethodDelete, "/v1/users/Alex", "")
	req.Equal(http.StatusConflict, rec.Code)

	rec = do(srv, http.MethodPost, groupPath+"/admin", `{"approver":"Bob","user":"Charlie"}`)
	req.Equal(http.StatusForbidden, rec.Code)

	rec = do(srv, http.MethodPost, groupPath+"/admin", `{"approver":"Alex","user":"Dan"}`)
	req.Equal(http.StatusUnprocessableEntity, rec.Code)

	// Members 2 + group messages 0 + Dan's message left overall.
	rec = do(srv, http.MethodDelete, "/v1/users/Bob", "")
	req.Equal(http.StatusOK, rec.Code)
	req.JSONEq(`{"result":3}`, rec.Body.String())

	rec = do(srv, http.MethodGet, groupPath+"/messages", "")
	req.Equal(http.StatusOK, rec.Code)
	req.JSONEq(`[]`, rec.Body.String())

	rec = search(2)
	req.Equal(http.StatusUnprocessableEntity, rec.Code)

	rec = do(srv, http.MethodGet, "/v1/groups", "")
	req.Equal(http.StatusOK, rec.Code)
	var groups []models.Group
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &groups))
	req.Len(groups, 2)
	req.Equal([]string{"Alex", "Charlie"}, groups[0].Members)
}
