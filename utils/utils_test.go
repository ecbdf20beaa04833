package utils

import (
	"bytes"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQRCode(t *testing.T) {
	b, err := GenerateQRCode("TKT-1234567890", TicketQRSize)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, TicketQRSize, img.Bounds().Dx())

	_, err = GenerateQRCode("", TicketQRSize)
	assert.Error(t, err)
}

func TestBuildTicketMessage(t *testing.T) {
	m, err := BuildTicketMessage("box@cinema.local", "ann@example.com", TicketConfirmationData{
		CustomerName: "Ann",
		TicketCode:   "TKT-abc",
		MovieTitle:   "Dune",
		StartsAt:     "2026-11-01 18:00",
		NumSeats:     2,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ann@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Ticket confirmation TKT-abc"}, m.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "TKT-abc.png")
	assert.Contains(t, out, "Dune")
}

func TestParseId(t *testing.T) {
	app := fiber.New()
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		id, err := ParseId(c, "id")
		if err != nil {
			return MessageResponse(c, fiber.StatusBadRequest, "bad id")
		}
		return SuccessResponse(c, fiber.StatusOK, id)
	})

	cases := []struct {
		path   string
		status int
		body   string
	}{
		{"/items/12", http.StatusOK, `{"status":"success","data":12}`},
		{"/items/0", http.StatusBadRequest, "bad id"},
		{"/items/-3", http.StatusBadRequest, "bad id"},
		{"/items/x", http.StatusBadRequest, "bad id"},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, tc.path, nil))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Equal(t, tc.status, resp.StatusCode, tc.path)
		assert.Equal(t, tc.body, strings.TrimSpace(string(body)), tc.path)
	}
}
