package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/brandqr/internal/palette"
	"github.com/cristianadrielbraun/brandqr/internal/render"
	"github.com/cristianadrielbraun/brandqr/web/components"
)

// maxTextBytes caps the payload before it reaches the encoder.
const maxTextBytes = 4096

const downloadFilename = "qr_code.png"

// paletteJSON is one entry of GET /api/palettes.
type paletteJSON struct {
	Name  string   `json:"name"`
	Stops []string `json:"stops"`
}

// readText pulls the text parameter and applies the request-level checks.
func readText(c *gin.Context) (string, error) {
	text := c.Query("text")
	if text == "" {
		return "", render.ErrEmptyText
	}
	if len(text) > maxTextBytes {
		return "", &render.EncodeError{Text: text, Err: errors.New("text exceeds " + strconv.Itoa(maxTextBytes) + " bytes")}
	}
	return text, nil
}

// statusFor maps pipeline errors to HTTP status codes and user-facing text.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, render.ErrEmptyText):
		return http.StatusBadRequest, "text parameter is required"
	case errors.Is(err, render.ErrUnknownPalette):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, render.ErrEncode):
		return http.StatusUnprocessableEntity, "text is too long to fit in a QR code"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "request cancelled"
	default:
		return http.StatusInternalServerError, "failed to generate QR code"
	}
}

// QRCodeHandler renders the QR code for ?text= in the ?palette= gradient as
// PNG. With ?download=1 the response is served as an attachment.
func (h *Handler) QRCodeHandler(c *gin.Context) {
	text, err := readText(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	res, err := h.qr.Generate(c.Request.Context(), render.Request{
		Text:    text,
		Palette: c.Query("palette"),
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	data, err := res.PNG()
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=3600") // Cache for 1 hour
	c.Header("X-QR-Debug", fmt.Sprintf("palette=%s;label=%s;locked=%t;logo=%t;size=%d",
		res.Palette.Name, res.Label, res.Locked, res.HasLogo, res.Image.Bounds().Dx()))
	c.Header("X-QR-Palette", res.Palette.Name)
	c.Header("X-QR-Logo", strconv.FormatBool(res.HasLogo))
	if res.Locked {
		c.Header("X-QR-Locked", "true")
	}
	if isTruthy(c.Query("download")) {
		c.Header("Content-Disposition", `attachment; filename="`+downloadFilename+`"`)
	}
	c.Data(http.StatusOK, "image/png", data)
}

// Preview renders the HTMX fragment for the live preview. Problems are shown
// as a toast in the fragment rather than as an HTTP error.
func (h *Handler) Preview(c *gin.Context) {
	text := c.Query("text")
	d := components.PreviewData{
		Text:     text,
		Palette:  c.Query("palette"),
		Palettes: h.qr.Catalog().Names(),
		Locked:   h.qr.Locked(text),
	}
	if d.Palette == "" {
		d.Palette = h.qr.Catalog().Default().Name
	}
	if d.Locked {
		d.Palette = components.LockedPalette
	}

	if text != "" {
		if err := h.checkPreview(text, d.Palette, d.Locked); err != nil {
			_, msg := statusFor(err)
			d.Error = msg
		}
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := components.Preview(d).Render(c.Request.Context(), c.Writer); err != nil {
		_ = c.Error(err)
	}
}

// checkPreview catches what would make the image request fail without
// rendering it. Only the module grid is built here; the browser's follow-up
// /api/qr request encodes the text again and does all the pixel work.
func (h *Handler) checkPreview(text, pal string, locked bool) error {
	if len(text) > maxTextBytes {
		return &render.EncodeError{Text: text, Err: errors.New("text too long")}
	}
	if !locked {
		if _, err := h.qr.Catalog().Lookup(pal); errors.Is(err, palette.ErrNotFound) {
			return fmt.Errorf("%w: %q", render.ErrUnknownPalette, pal)
		}
	}
	_, err := render.Encode(text)
	return err
}

// Palettes lists the palette table.
func (h *Handler) Palettes(c *gin.Context) {
	all := h.qr.Catalog().All()
	out := make([]paletteJSON, 0, len(all))
	for _, p := range all {
		out = append(out, paletteJSON{Name: p.Name, Stops: p.Hex()})
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) fail(c *gin.Context, err error) {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("qr generation failed", "error", err)
	}
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": msg})
}

func isTruthy(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
