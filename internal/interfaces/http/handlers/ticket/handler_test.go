package ticket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"deskline/internal/application/ticket/usecases"
	domainticket "deskline/internal/domain/ticket"
	vo "deskline/internal/domain/ticket/valueobjects"
	"deskline/internal/infrastructure/migration"
	"deskline/internal/infrastructure/repository"
	"deskline/internal/shared/logger"
)

type listResponse struct {
	Items      []map[string]interface{} `json:"items"`
	Page       int                      `json:"page"`
	TotalPages int                      `json:"totalPages"`
	TotalItems int64                    `json:"totalItems"`
}

func setupTestEngine(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migration.AutoMigrate(db))

	ticketRepo := repository.NewTicketRepository(db)
	logRepo := repository.NewTicketLogRepository(db)
	log := logger.NewLogger()

	handler := NewHandler(
		usecases.NewListTicketsUseCase(ticketRepo, log),
		usecases.NewGetTicketUseCase(ticketRepo, log),
		usecases.NewGetTicketLogUseCase(logRepo, log),
		usecases.NewChangeStatusUseCase(ticketRepo, logRepo, log),
	)

	engine := gin.New()
	engine.GET("/tickets", handler.ListTickets)
	engine.GET("/tickets/:id", handler.GetTicket)
	engine.PATCH("/tickets/:id", handler.ChangeStatus)
	engine.GET("/tickets-log", handler.GetTicketLog)

	return engine, db
}

func seedTicket(t *testing.T, db *gorm.DB, id, title, desc string, status vo.TicketStatus, priority vo.Priority, agentID string) {
	t.Helper()
	created := time.Now().Add(-time.Hour)
	tk, err := domainticket.ReconstructTicket(id, title, desc, status, priority, agentID, nil, created, created)
	require.NoError(t, err)
	require.NoError(t, repository.NewTicketRepository(db).Save(context.Background(), tk))
}

func seedBoard(t *testing.T, db *gorm.DB) {
	t.Helper()
	seedTicket(t, db, "t-1", "Printer on fire", "It started smoking", vo.StatusOpen, vo.PriorityCritical, "agent-1")
	seedTicket(t, db, "t-2", "VPN drops hourly", "Connection resets", vo.StatusInProgress, vo.PriorityMedium, "agent-2")
	seedTicket(t, db, "t-3", "Monitor flickers", "Left screen only", vo.StatusOpen, vo.PriorityLow, "agent-1")
}

func doRequest(t *testing.T, engine *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestListTickets_FiltersAndPaginates(t *testing.T) {
	engine, db := setupTestEngine(t)
	seedBoard(t, db)

	t.Run("no filters returns everything", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodGet, "/tickets", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp listResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(3), resp.TotalItems)
		assert.Equal(t, 1, resp.TotalPages)
		assert.Len(t, resp.Items, 3)
	})

	t.Run("status filter", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodGet, "/tickets?status=open", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp listResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(2), resp.TotalItems)
		for _, item := range resp.Items {
			assert.Equal(t, "open", item["status"])
		}
	})

	t.Run("all sentinel skips the filter", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodGet, "/tickets?status=all&agentId=all&priority=all", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp listResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(3), resp.TotalItems)
	})

	t.Run("conjunctive filters", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodGet, "/tickets?status=open&agentId=agent-1&priority=low", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp listResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "t-3", resp.Items[0]["id"])
	})

	t.Run("q matches title and description case-insensitively", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodGet, "/tickets?q=SCREEN", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp listResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "t-3", resp.Items[0]["id"])
	})

	t.Run("pagination slices and reports totals", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodGet, "/tickets?page=2&limit=2", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp listResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Page)
		assert.Equal(t, 2, resp.TotalPages)
		assert.Equal(t, int64(3), resp.TotalItems)
		assert.Len(t, resp.Items, 1)
	})

	t.Run("invalid page falls back to defaults", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodGet, "/tickets?page=banana&limit=-5", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp listResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Page)
	})

	t.Run("no match still reports one page", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodGet, "/tickets?q=nosuchthing", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp listResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(0), resp.TotalItems)
		assert.Equal(t, 1, resp.TotalPages)
		assert.Empty(t, resp.Items)
	})
}

func TestGetTicket(t *testing.T) {
	engine, db := setupTestEngine(t)
	seedBoard(t, db)

	w := doRequest(t, engine, http.MethodGet, "/tickets/t-2", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "t-2", body["id"])
	assert.Equal(t, "in_progress", body["status"])

	w = doRequest(t, engine, http.MethodGet, "/tickets/missing", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Ticket not found", body["error"])
}

func TestChangeStatus(t *testing.T) {
	t.Run("success updates ticket and appends one log entry", func(t *testing.T) {
		engine, db := setupTestEngine(t)
		seedBoard(t, db)

		w := doRequest(t, engine, http.MethodPatch, "/tickets/t-1",
			`{"status":"in_progress","comment":"taking a look"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "t-1", body["id"])
		assert.Equal(t, "in_progress", body["status"])
		assert.Equal(t, "Printer on fire", body["title"], "untouched fields survive the update")

		w = doRequest(t, engine, http.MethodGet, "/tickets-log?ticketId=t-1", "")
		require.Equal(t, http.StatusOK, w.Code)

		var entries []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "status_changed", entries[0]["action"])
		assert.Equal(t, "open", entries[0]["from"])
		assert.Equal(t, "in_progress", entries[0]["to"])
		assert.Equal(t, "taking a look", entries[0]["comment"])
	})

	t.Run("validation errors", func(t *testing.T) {
		engine, db := setupTestEngine(t)
		seedBoard(t, db)

		tests := []struct {
			name     string
			body     string
			wantCode int
			wantErr  string
		}{
			{
				name:     "missing status",
				body:     `{"comment":"hello"}`,
				wantCode: http.StatusBadRequest,
				wantErr:  "status is required",
			},
			{
				name:     "missing comment",
				body:     `{"status":"closed"}`,
				wantCode: http.StatusBadRequest,
				wantErr:  "comment is required",
			},
			{
				name:     "whitespace comment",
				body:     `{"status":"closed","comment":"   "}`,
				wantCode: http.StatusBadRequest,
				wantErr:  "comment is required",
			},
			{
				name:     "unknown status",
				body:     `{"status":"escalated","comment":"hello"}`,
				wantCode: http.StatusBadRequest,
				wantErr:  "Invalid status",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := doRequest(t, engine, http.MethodPatch, "/tickets/t-1", tt.body)
				assert.Equal(t, tt.wantCode, w.Code)

				var body map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.wantErr, body["error"])
			})
		}

		// None of the rejected submissions may have produced a log entry.
		w := doRequest(t, engine, http.MethodGet, "/tickets-log?ticketId=t-1", "")
		var entries []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
		assert.Empty(t, entries)
	})

	t.Run("unknown ticket", func(t *testing.T) {
		engine, db := setupTestEngine(t)
		seedBoard(t, db)

		w := doRequest(t, engine, http.MethodPatch, "/tickets/missing",
			`{"status":"closed","comment":"bye"}`)
		require.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Ticket not found", body["error"])
	})
}

func TestGetTicketLog(t *testing.T) {
	engine, db := setupTestEngine(t)
	seedBoard(t, db)

	t.Run("requires ticketId", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodGet, "/tickets-log", "")
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "ticketId is required", body["error"])
	})

	t.Run("orders newest first", func(t *testing.T) {
		logRepo := repository.NewTicketLogRepository(db)
		ctx := context.Background()

		first, err := domainticket.NewStatusChangeLog("t-2", vo.StatusOpen, vo.StatusInProgress, "picked up")
		require.NoError(t, err)
		require.NoError(t, logRepo.Append(ctx, first))

		time.Sleep(5 * time.Millisecond)

		second, err := domainticket.NewStatusChangeLog("t-2", vo.StatusInProgress, vo.StatusResolved, "fixed")
		require.NoError(t, err)
		require.NoError(t, logRepo.Append(ctx, second))

		w := doRequest(t, engine, http.MethodGet, "/tickets-log?ticketId=t-2", "")
		require.Equal(t, http.StatusOK, w.Code)

		var entries []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
		require.Len(t, entries, 2)
		assert.Equal(t, "fixed", entries[0]["comment"])
		assert.Equal(t, "picked up", entries[1]["comment"])
	})
}
