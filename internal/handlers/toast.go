package handlers

import (
    "net/http"

    "github.com/gin-gonic/gin"

    "github.com/cristianadrielbraun/brandqr/web/components"
)

// GenericToast returns a Toast component rendered as HTML for HTMX swaps.
func (h *Handler) GenericToast(c *gin.Context) {
    title := c.PostForm("title")
    description := c.PostForm("description")
    variant := components.ParseVariant(c.PostForm("variant"))
    dismissible := c.PostForm("dismissible") == "on"

    c.Header("Content-Type", "text/html; charset=utf-8")
    c.Status(http.StatusOK)

    _ = components.Toast(components.ToastProps{
        Title:       title,
        Description: description,
        Variant:     variant,
        Duration:    2000,
        Dismissible: dismissible,
    }).Render(c.Request.Context(), c.Writer)
}
