package components

import (
    "net/url"
)

// PreviewData is what the QR form and its live preview render from.
type PreviewData struct {
    Text     string
    Palette  string
    Palettes []string
    // Locked is set when the text points at a brand that is always black.
    Locked bool
    // Error is shown as a toast instead of the image.
    Error string
}

// ImageURL is the inline preview source. Empty when there is nothing to show.
func (d PreviewData) ImageURL() string {
    if d.Text == "" || d.Error != "" {
        return ""
    }
    return "/api/qr?" + d.query().Encode()
}

// DownloadURL points at the same image served as an attachment.
func (d PreviewData) DownloadURL() string {
    if d.Text == "" || d.Error != "" {
        return ""
    }
    q := d.query()
    q.Set("download", "1")
    return "/api/qr?" + q.Encode()
}

func (d PreviewData) query() url.Values {
    q := url.Values{}
    q.Set("text", d.Text)
    if d.Palette != "" {
        q.Set("palette", d.Palette)
    }
    return q
}
