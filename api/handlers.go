package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/google/uuid"

	"taskmaster-api/domain"
	"taskmaster-api/suggest"
	"taskmaster-api/views"
)

// Register wires up all API routes on the provided Echo instance.
func Register(e *echo.Echo, store TaskStore, sessions *SessionManager, suggester suggest.Suggester, logger *log.Logger) {
	e.GET("/healthz", healthz())

	e.POST("/api/auth/register", registerUser(sessions))
	e.POST("/api/auth/login", login(sessions))
	e.POST("/api/auth/logout", logout(sessions, sessions))
	e.GET("/api/auth/me", me(sessions, sessions))

	e.GET("/api/tasks", listTasks(store, sessions, logger))
	e.POST("/api/tasks", createTask(store, sessions))
	e.PUT("/api/tasks/:id", updateTask(store, sessions))
	e.DELETE("/api/tasks/:id", deleteTask(store, sessions))

	e.GET("/api/views/dashboard", dashboardView(store, sessions))
	e.GET("/api/views/today", todayView(store, sessions))
	e.GET("/api/views/overdue", overdueView(store, sessions))
	e.GET("/api/views/calendar", calendarView(store, sessions))
	e.GET("/api/views/analytics", analyticsView(store, sessions))
	e.GET("/api/views/categories/:category", categoryView(store, sessions))

	e.POST("/api/suggest", suggestTask(suggester, sessions))
}

func decodeBody(c echo.Context, v any) error {
	lr := io.LimitReader(c.Request().Body, maxBodySize)
	dec := sonic.ConfigStd.NewDecoder(lr)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func healthz() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
}

func registerUser(sessions *SessionManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req credentialsRequest
		if err := decodeBody(c, &req); err != nil {
			return c.String(http.StatusBadRequest, "invalid body")
		}
		user, err := sessions.Register(req.Name, req.Email)
		if err != nil {
			return c.String(http.StatusBadRequest, err.Error())
		}
		return c.JSON(http.StatusCreated, user)
	}
}

func login(sessions *SessionManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req credentialsRequest
		if err := decodeBody(c, &req); err != nil {
			return c.String(http.StatusBadRequest, "invalid body")
		}
		user, token, err := sessions.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				return c.String(http.StatusUnauthorized, err.Error())
			}
			c.Logger().Error(err)
			return c.String(http.StatusInternalServerError, "login failed")
		}
		return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
	}
}

func logout(sessions *SessionManager, auth Authenticator) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := auth.UserFromAuthHeader(c.Request().Header.Get("Authorization")); err != nil {
			return c.String(http.StatusUnauthorized, err.Error())
		}
		if err := sessions.Logout(c.Request().Context()); err != nil {
			c.Logger().Error(err)
			return c.String(http.StatusInternalServerError, "logout failed")
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func me(sessions *SessionManager, auth Authenticator) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := auth.UserFromAuthHeader(c.Request().Header.Get("Authorization")); err != nil {
			return c.String(http.StatusUnauthorized, err.Error())
		}
		user, err := sessions.Current(c.Request().Context())
		if err != nil {
			if errors.Is(err, ErrNoSession) {
				return c.String(http.StatusUnauthorized, err.Error())
			}
			c.Logger().Error(err)
			return c.String(http.StatusInternalServerError, "session lookup failed")
		}
		return c.JSON(http.StatusOK, user)
	}
}

// snapshot authenticates the request and returns the current collection.
// It writes the error response itself; callers bail out when ok is false.
func snapshot(c echo.Context, store TaskStore, auth Authenticator) ([]domain.Task, bool, error) {
	if _, err := auth.UserFromAuthHeader(c.Request().Header.Get("Authorization")); err != nil {
		return nil, false, c.String(http.StatusUnauthorized, err.Error())
	}
	if store.Loading() {
		return nil, false, c.String(http.StatusServiceUnavailable, "task store is loading")
	}
	return store.Tasks(), true, nil
}

func listTasks(store TaskStore, auth Authenticator, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		ctx := c.Request().Context()
		metrics, spanCtx := newTaskRequestMetrics(ctx, logger)
		if spanCtx != nil {
			c.SetRequest(c.Request().WithContext(spanCtx))
		}
		defer func() {
			metrics.Log(c.Response().Status, err)
		}()

		authStart := time.Now()
		_, authErr := auth.UserFromAuthHeader(c.Request().Header.Get("Authorization"))
		metrics.ObserveAuth(time.Since(authStart))
		if authErr != nil {
			metrics.SetErrorStage("auth")
			err = c.String(http.StatusUnauthorized, authErr.Error())
			return err
		}

		if store.Loading() {
			metrics.SetErrorStage("loading")
			err = c.String(http.StatusServiceUnavailable, "task store is loading")
			return err
		}

		snapshotStart := time.Now()
		tasks := store.Tasks()
		metrics.ObserveSnapshot(time.Since(snapshotStart))
		metrics.SetTasksReturned(len(tasks))

		encodeStart := time.Now()
		err = c.JSON(http.StatusOK, tasksResponse{Tasks: tasks})
		metrics.ObserveEncode(time.Since(encodeStart))
		if err != nil {
			metrics.SetErrorStage("encode_response")
		}
		return err
	}
}

func createTask(store TaskStore, auth Authenticator) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := auth.UserFromAuthHeader(c.Request().Header.Get("Authorization")); err != nil {
			return c.String(http.StatusUnauthorized, err.Error())
		}
		if store.Loading() {
			return c.String(http.StatusServiceUnavailable, "task store is loading")
		}

		var req createTaskRequest
		if err := decodeBody(c, &req); err != nil {
			return c.String(http.StatusBadRequest, "invalid body")
		}
		category, err := domain.ParseCategory(req.Category)
		if err != nil {
			return c.String(http.StatusBadRequest, err.Error())
		}
		priority, err := domain.ParsePriority(req.Priority)
		if err != nil {
			return c.String(http.StatusBadRequest, err.Error())
		}

		task := domain.Task{
			ID:          uuid.NewString(),
			Title:       req.Title,
			Description: req.Description,
			Category:    category,
			Priority:    priority,
			DueDate:     req.DueDate,
			Completed:   false,
			CreatedAt:   time.Now(),
		}
		if err := store.Add(c.Request().Context(), task); err != nil {
			return c.String(http.StatusBadRequest, err.Error())
		}
		return c.JSON(http.StatusCreated, task)
	}
}

func updateTask(store TaskStore, auth Authenticator) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := auth.UserFromAuthHeader(c.Request().Header.Get("Authorization")); err != nil {
			return c.String(http.StatusUnauthorized, err.Error())
		}
		if store.Loading() {
			return c.String(http.StatusServiceUnavailable, "task store is loading")
		}

		var task domain.Task
		if err := decodeBody(c, &task); err != nil {
			return c.String(http.StatusBadRequest, "invalid body")
		}
		task.ID = c.Param("id")
		if err := store.Update(c.Request().Context(), task); err != nil {
			return c.String(http.StatusBadRequest, err.Error())
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func deleteTask(store TaskStore, auth Authenticator) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := auth.UserFromAuthHeader(c.Request().Header.Get("Authorization")); err != nil {
			return c.String(http.StatusUnauthorized, err.Error())
		}
		if store.Loading() {
			return c.String(http.StatusServiceUnavailable, "task store is loading")
		}

		if err := store.Delete(c.Request().Context(), c.Param("id")); err != nil {
			c.Logger().Error(err)
			return c.String(http.StatusInternalServerError, err.Error())
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func dashboardView(store TaskStore, auth Authenticator) echo.HandlerFunc {
	return func(c echo.Context) error {
		tasks, ok, err := snapshot(c, store, auth)
		if !ok {
			return err
		}
		now := time.Now()
		resp := dashboardResponse{
			Total:        len(tasks),
			TodayPending: len(views.Pending(views.DueToday(tasks, now))),
			Overdue:      len(views.Overdue(tasks, now)),
			Upcoming:     len(views.Upcoming(tasks, now)),
			Completed:    len(views.Completed(tasks)),
			Pending:      len(views.Pending(tasks)),
		}
		return c.JSON(http.StatusOK, resp)
	}
}

func todayView(store TaskStore, auth Authenticator) echo.HandlerFunc {
	return func(c echo.Context) error {
		tasks, ok, err := snapshot(c, store, auth)
		if !ok {
			return err
		}
		now := time.Now()
		today := views.DueToday(tasks, now)
		return c.JSON(http.StatusOK, todayResponse{
			Date:       now.Format("2006-01-02"),
			Tasks:      today,
			Completion: views.Completion(today),
		})
	}
}

func overdueView(store TaskStore, auth Authenticator) echo.HandlerFunc {
	return func(c echo.Context) error {
		tasks, ok, err := snapshot(c, store, auth)
		if !ok {
			return err
		}
		now := time.Now()
		grouped := views.OverdueByBucket(tasks, now)
		resp := overdueResponse{Buckets: []bucketGroup{}}
		for _, bucket := range views.OverdueBuckets {
			group, present := grouped[bucket]
			if !present {
				continue
			}
			resp.Total += len(group)
			resp.Buckets = append(resp.Buckets, bucketGroup{Bucket: bucket, Tasks: group})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

func calendarView(store TaskStore, auth Authenticator) echo.HandlerFunc {
	return func(c echo.Context) error {
		tasks, ok, err := snapshot(c, store, auth)
		if !ok {
			return err
		}

		now := time.Now()
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		if raw := c.QueryParam("month"); raw != "" {
			parsed, parseErr := time.ParseInLocation("2006-01", raw, now.Location())
			if parseErr != nil {
				return c.String(http.StatusBadRequest, "invalid month, expected YYYY-MM")
			}
			month = parsed
		}

		resp := calendarResponse{Month: month.Format("2006-01"), Days: []calendarDay{}}
		next := month.AddDate(0, 1, 0)
		for day := month; day.Before(next); day = day.AddDate(0, 0, 1) {
			due := views.OnDay(tasks, day)
			if len(due) == 0 {
				continue
			}
			resp.Days = append(resp.Days, calendarDay{Day: day.Format("2006-01-02"), Tasks: due})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

func analyticsView(store TaskStore, auth Authenticator) echo.HandlerFunc {
	return func(c echo.Context) error {
		tasks, ok, err := snapshot(c, store, auth)
		if !ok {
			return err
		}

		tf, tfErr := views.ParseTimeframe(c.QueryParam("timeframe"))
		if tfErr != nil {
			return c.String(http.StatusBadRequest, tfErr.Error())
		}

		now := time.Now()
		filtered := views.InTimeframe(tasks, now, tf)
		resp := analyticsResponse{
			Timeframe:  tf,
			Completion: views.Completion(filtered),
			OnTime:     views.OnTime(filtered),
			Overdue:    len(views.Overdue(filtered, now)),
			ByCategory: views.ByCategory(filtered),
			ByPriority: views.ByPriority(filtered),
			Weekly:     views.WeeklyActivity(tasks, now),
		}
		return c.JSON(http.StatusOK, resp)
	}
}

func categoryView(store TaskStore, auth Authenticator) echo.HandlerFunc {
	return func(c echo.Context) error {
		tasks, ok, err := snapshot(c, store, auth)
		if !ok {
			return err
		}
		category, parseErr := domain.ParseCategory(c.Param("category"))
		if parseErr != nil {
			return c.String(http.StatusNotFound, parseErr.Error())
		}

		matched := []domain.Task{}
		for _, t := range tasks {
			if t.Category == category {
				matched = append(matched, t)
			}
		}
		return c.JSON(http.StatusOK, categoryResponse{
			Category:   category,
			Tasks:      matched,
			Completion: views.Completion(matched),
		})
	}
}

func suggestTask(suggester suggest.Suggester, auth Authenticator) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := auth.UserFromAuthHeader(c.Request().Header.Get("Authorization")); err != nil {
			return c.String(http.StatusUnauthorized, err.Error())
		}

		var req suggestRequest
		if err := decodeBody(c, &req); err != nil {
			return c.String(http.StatusBadRequest, "invalid body")
		}

		suggestion, err := suggester.Suggest(c.Request().Context(), req.Title)
		if err != nil {
			if errors.Is(err, suggest.ErrTitleTooShort) {
				return c.String(http.StatusUnprocessableEntity, err.Error())
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			c.Logger().Error(err)
			return c.String(http.StatusBadGateway, "suggestion lookup failed")
		}
		return c.JSON(http.StatusOK, suggestion)
	}
}
