package components

import (
    "context"
    "fmt"
    "io"

    "github.com/a-h/templ"
)

// HomePage is the single page of the site: the form plus its preview.
func HomePage(d PreviewData) templ.Component {
    return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
        if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head>`+
            `<meta charset="utf-8"/><meta name="viewport" content="width=device-width, initial-scale=1"/>`+
            `<title>brandqr</title>`+
            `<link rel="stylesheet" href="/web/assets/css/output.css"/>`+
            `<script src="/web/assets/js/preview.js" defer></script>`+
            `</head><body class="min-h-screen bg-gray-50 text-gray-900">`+
            `<main class="mx-auto max-w-xl p-6">`+
            `<h1 class="mb-6 text-2xl font-bold">Branded QR codes</h1>`+
            `<form id="qr-form" class="space-y-4" onsubmit="return false" data-preview-url="/api/htmx/preview" data-preview-target="qr-preview">`); err != nil {
            return err
        }
        if _, err := fmt.Fprintf(w,
            `<input id="text" name="text" type="text" placeholder="https://example.com" value="%s" `+
                `class="w-full rounded-md border border-gray-300 px-3 py-2" `+
                `data-preview="input"/>`,
            templ.EscapeString(d.Text)); err != nil {
            return err
        }
        if _, err := io.WriteString(w, `<div id="palette-field">`); err != nil {
            return err
        }
        if err := PaletteSelect(d).Render(ctx, w); err != nil {
            return err
        }
        if _, err := io.WriteString(w, `</div></form><section id="qr-preview" class="mt-8 text-center">`); err != nil {
            return err
        }
        if src := d.ImageURL(); src != "" {
            if _, err := fmt.Fprintf(w, `<img src="%s" alt="QR code" class="mx-auto h-64 w-64"/>`, templ.EscapeString(src)); err != nil {
                return err
            }
        }
        _, err := io.WriteString(w, `</section></main></body></html>`)
        return err
    })
}
