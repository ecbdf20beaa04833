package handler_test

import (
	"bytes"
	"cinema_api/database"
	"cinema_api/model"
	"cinema_api/router"
	"cinema_api/testdb"
	"encoding/json"
	"fmt"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var showtime = time.Date(2026, 11, 1, 18, 0, 0, 0, time.UTC)

func setup(t *testing.T) *fiber.App {
	t.Helper()
	database.DB = testdb.New(t)
	database.Redis = nil
	return router.NewApp()
}

func do(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var payload model.Payload[T]
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "success", payload.Status)
	return payload.Data
}

func movieBody(screenings ...model.ScreeningInput) map[string]any {
	return map[string]any{
		"title":       "Dune",
		"rating":      "PG-13",
		"description": "Spice",
		"runtimeMins": 155,
		"screenings":  screenings,
	}
}

func TestCreateAndListMovies(t *testing.T) {
	app := setup(t)
	a := testdb.Auditorium(t, database.DB, 30)

	resp, body := do(t, app, http.MethodPost, "/movies", movieBody(
		model.ScreeningInput{ScreenNumber: a.ID, Capacity: 30, StartsAt: showtime},
		model.ScreeningInput{ScreenNumber: a.ID, Capacity: 12, StartsAt: showtime.Add(3 * time.Hour)},
	))
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	created := decode[model.MovieWithScreeningsOutput](t, body)
	assert.Equal(t, fmt.Sprintf("/movies/%d", created.ID), resp.Header.Get(fiber.HeaderLocation))
	assert.Equal(t, "Dune", created.Title)
	require.Len(t, created.Screenings, 2)

	resp, body = do(t, app, http.MethodGet, "/movies", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	movies := decode[[]model.MovieOutput](t, body)
	require.Len(t, movies, 1)
	assert.Equal(t, created.ID, movies[0].ID)

	resp, body = do(t, app, http.MethodGet, fmt.Sprintf("/movies/%d/screenings", created.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	screenings := decode[[]model.ScreeningOutput](t, body)
	require.Len(t, screenings, 2)
	assert.Equal(t, a.ID, screenings[0].ScreenNumber)
	assert.Equal(t, 30, screenings[0].Capacity)
	assert.Equal(t, 12, screenings[1].Capacity)
}

func TestCreateMovieUnknownScreen(t *testing.T) {
	app := setup(t)

	resp, body := do(t, app, http.MethodPost, "/movies", movieBody(
		model.ScreeningInput{ScreenNumber: 7, Capacity: 10, StartsAt: showtime},
	))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "No screen with id = 7", string(body))

	_, body = do(t, app, http.MethodGet, "/movies", nil)
	assert.Empty(t, decode[[]model.MovieOutput](t, body))
}

func TestCreateMovieValidation(t *testing.T) {
	app := setup(t)

	resp, body := do(t, app, http.MethodPost, "/movies", map[string]any{"rating": "R"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var errBody map[string]any
	require.NoError(t, json.Unmarshal(body, &errBody))
	assert.Equal(t, "Invalid input", errBody["message"])

	resp, _ = do(t, app, http.MethodPost, "/movies", movieBody(model.ScreeningInput{Capacity: 10, StartsAt: showtime}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	for _, path := range []string{"/movies/abc", "/movies/0"} {
		resp, body = do(t, app, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		assert.Equal(t, "Id must be a positive integer", errorBody(t, body)["message"], path)
	}
}

func errorBody(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

func TestUnknownRouteUsesErrorEnvelope(t *testing.T) {
	app := setup(t)

	resp, body := do(t, app, http.MethodGet, "/popcorn", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	out := errorBody(t, body)
	assert.Equal(t, "request failed", out["message"])
	assert.Equal(t, "Cannot GET /popcorn", out["error"])
}

func TestPanicIsRecoveredAsJSON(t *testing.T) {
	app := setup(t)
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("projector on fire")
	})

	resp, body := do(t, app, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	out := errorBody(t, body)
	assert.Equal(t, "request failed", out["message"])
	assert.Contains(t, out["error"], "projector on fire")
}

func TestDatabaseFailureReturnsInternalError(t *testing.T) {
	app := setup(t)
	sqlDB, err := database.DB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	resp, body := do(t, app, http.MethodGet, "/movies", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	out := errorBody(t, body)
	assert.Equal(t, "Internal server error", out["message"])
	assert.NotEmpty(t, out["error"])
}

func TestEditMovie(t *testing.T) {
	app := setup(t)
	_, body := do(t, app, http.MethodPost, "/movies", movieBody())
	created := decode[model.MovieWithScreeningsOutput](t, body)

	time.Sleep(10 * time.Millisecond)
	update := map[string]any{"title": "Arrival", "rating": "PG", "description": "Heptapods", "runtimeMins": 116}
	resp, body := do(t, app, http.MethodPut, fmt.Sprintf("/movies/%d", created.ID), update)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	edited := decode[model.MovieOutput](t, body)
	assert.Equal(t, created.ID, edited.ID)
	assert.Equal(t, "Arrival", edited.Title)
	assert.Equal(t, "PG", edited.Rating)
	assert.Equal(t, "Heptapods", edited.Description)
	assert.Equal(t, 116, edited.RuntimeMins)
	assert.True(t, edited.UpdatedAt.After(created.UpdatedAt))

	resp, body = do(t, app, http.MethodPut, "/movies/999", update)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Could not find any movie with id=999.", string(body))
}

func TestDeleteMovie(t *testing.T) {
	app := setup(t)
	a := testdb.Auditorium(t, database.DB, 10)
	_, body := do(t, app, http.MethodPost, "/movies", movieBody(
		model.ScreeningInput{ScreenNumber: a.ID, Capacity: 10, StartsAt: showtime},
	))
	created := decode[model.MovieWithScreeningsOutput](t, body)

	path := fmt.Sprintf("/movies/%d", created.ID)
	resp, body := do(t, app, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	deleted := decode[model.MovieOutput](t, body)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Equal(t, "Dune", deleted.Title)

	resp, _ = do(t, app, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = do(t, app, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateScreeningByMovieId(t *testing.T) {
	app := setup(t)
	a := testdb.Auditorium(t, database.DB, 20)
	_, body := do(t, app, http.MethodPost, "/movies", movieBody())
	created := decode[model.MovieWithScreeningsOutput](t, body)
	path := fmt.Sprintf("/movies/%d/screenings", created.ID)

	resp, body := do(t, app, http.MethodPost, path, model.ScreeningInput{ScreenNumber: a.ID, Capacity: 15, StartsAt: showtime})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	screening := decode[model.ScreeningOutput](t, body)
	assert.Equal(t, 15, screening.Capacity)
	assert.Equal(t, a.ID, screening.ScreenNumber)

	resp, body = do(t, app, http.MethodPost, path, model.ScreeningInput{ScreenNumber: a.ID, Capacity: 21, StartsAt: showtime})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("Screen %d has only 20 seats", a.ID), string(body))

	resp, body = do(t, app, http.MethodPost, path, model.ScreeningInput{ScreenNumber: 99, Capacity: 5, StartsAt: showtime})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "No screen with id = 99", string(body))

	resp, body = do(t, app, http.MethodPost, "/movies/999/screenings", model.ScreeningInput{ScreenNumber: a.ID, Capacity: 5, StartsAt: showtime})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No movies with id=999", string(body))

	resp, _ = do(t, app, http.MethodGet, "/movies/999/screenings", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, body = do(t, app, http.MethodGet, path, nil)
	screenings := decode[[]model.ScreeningOutput](t, body)
	require.Len(t, screenings, 1)
	assert.Equal(t, 15, screenings[0].Capacity)
}

func TestCustomerCRUD(t *testing.T) {
	app := setup(t)

	resp, body := do(t, app, http.MethodPost, "/customers", model.CustomerInput{Name: "Ann", Email: "ann@example.com", Phone: "555"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	ann := decode[model.CustomerOutput](t, body)
	assert.Equal(t, "Ann", ann.Name)

	resp, body = do(t, app, http.MethodPost, "/customers", model.CustomerInput{Name: "Other", Email: "ann@example.com"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Email already in use", string(body))

	resp, _ = do(t, app, http.MethodPost, "/customers", model.CustomerInput{Name: "Bad", Email: "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	path := fmt.Sprintf("/customers/%d", ann.ID)
	resp, body = do(t, app, http.MethodPut, path, model.CustomerInput{Name: "Ann Lee", Email: "ann@example.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "Ann Lee", decode[model.CustomerOutput](t, body).Name)

	resp, body = do(t, app, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[model.CustomerOutput](t, body)
	assert.Equal(t, "Ann Lee", got.Name)
	assert.Empty(t, got.Phone)

	resp, _ = do(t, app, http.MethodGet, "/customers", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = do(t, app, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, body = do(t, app, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("Could not find any customer with id=%d.", ann.ID), string(body))
}

func TestTicketLifecycle(t *testing.T) {
	app := setup(t)
	a := testdb.Auditorium(t, database.DB, 4)
	customer := testdb.Customer(t, database.DB, "Ann", "ann@example.com")
	_, body := do(t, app, http.MethodPost, "/movies", movieBody(
		model.ScreeningInput{ScreenNumber: a.ID, Capacity: 4, StartsAt: showtime},
	))
	movie := decode[model.MovieWithScreeningsOutput](t, body)
	screeningId := movie.Screenings[0].ID
	bookPath := fmt.Sprintf("/customers/%d/screenings/%d", customer.ID, screeningId)

	resp, body := do(t, app, http.MethodPost, bookPath, model.CreateTicketInput{NumSeats: 3})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	ticket := decode[model.TicketOutput](t, body)
	assert.Equal(t, "BOOKED", ticket.Status)
	assert.Equal(t, 3, ticket.NumSeats)

	resp, body = do(t, app, http.MethodPost, bookPath, model.CreateTicketInput{NumSeats: 2})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("Screening %d has only 1 free seats", screeningId), string(body))

	resp, _ = do(t, app, http.MethodPost, fmt.Sprintf("/customers/999/screenings/%d", screeningId), model.CreateTicketInput{NumSeats: 1})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = do(t, app, http.MethodPost, fmt.Sprintf("/customers/%d/screenings/999", customer.ID), model.CreateTicketInput{NumSeats: 1})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = do(t, app, http.MethodGet, bookPath, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tickets := decode[[]model.TicketOutput](t, body)
	require.Len(t, tickets, 1)
	assert.Equal(t, ticket.TicketCode, tickets[0].TicketCode)

	resp, body = do(t, app, http.MethodGet, fmt.Sprintf("/screenings/%d/seats", screeningId), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	seats := decode[[]model.SeatMapEntry](t, body)
	require.Len(t, seats, 4)
	assert.True(t, seats[0].Reserved)
	assert.False(t, seats[3].Reserved)

	resp, body = do(t, app, http.MethodGet, fmt.Sprintf("/tickets/%d/qr", ticket.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))
	_, err := png.Decode(bytes.NewReader(body))
	assert.NoError(t, err)

	resp, _ = do(t, app, http.MethodDelete, fmt.Sprintf("/customers/%d", customer.ID), nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp, _ = do(t, app, http.MethodDelete, fmt.Sprintf("/movies/%d", movie.ID), nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = do(t, app, http.MethodDelete, fmt.Sprintf("/tickets/%d", ticket.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "CANCELLED", decode[model.TicketOutput](t, body).Status)

	resp, body = do(t, app, http.MethodDelete, fmt.Sprintf("/tickets/%d", ticket.ID), nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("Ticket %d is CANCELLED and can no longer be cancelled", ticket.ID), string(body))

	resp, _ = do(t, app, http.MethodPost, bookPath, model.CreateTicketInput{NumSeats: 4})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = do(t, app, http.MethodDelete, "/tickets/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = do(t, app, http.MethodGet, "/tickets/999/qr", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAuditoriums(t *testing.T) {
	app := setup(t)

	resp, body := do(t, app, http.MethodPost, "/auditoriums", model.CreateAuditoriumInput{Capacity: 24, SeatsPerRow: 8})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	created := decode[model.AuditoriumOutput](t, body)
	assert.Equal(t, created.ID, created.ScreenNumber)
	assert.Equal(t, 24, created.Capacity)

	resp, _ = do(t, app, http.MethodPost, "/auditoriums", model.CreateAuditoriumInput{Capacity: 0, SeatsPerRow: 8})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, body = do(t, app, http.MethodGet, "/auditoriums", nil)
	all := decode[[]model.AuditoriumOutput](t, body)
	require.Len(t, all, 1)

	resp, _ = do(t, app, http.MethodGet, "/screenings/5/seats", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
