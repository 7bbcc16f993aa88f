package components

import (
    "context"
    "fmt"
    "io"
    "strings"

    "github.com/a-h/templ"
    twmerge "github.com/Oudwins/tailwind-merge-go"
)

// LockedPalette is what the select shows for brands that are always black.
const LockedPalette = "Black"

const selectClass = "w-full rounded-md border border-gray-300 bg-white px-3 py-2 text-sm"

// PaletteSelect renders the palette dropdown. When locked it is disabled and
// pinned to LockedPalette.
func PaletteSelect(d PreviewData) templ.Component {
    return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
        class := selectClass
        if d.Locked {
            class = twmerge.Merge(selectClass, "cursor-not-allowed bg-gray-100 text-gray-500")
        }
        var b strings.Builder
        fmt.Fprintf(&b, `<select id="palette" name="palette" class="%s"`, templ.EscapeString(class))
        b.WriteString(` data-preview="change"`)
        if d.Locked {
            b.WriteString(` disabled`)
        }
        b.WriteString(">")

        selected := d.Palette
        if d.Locked {
            selected = LockedPalette
        }
        for _, name := range d.Palettes {
            fmt.Fprintf(&b, `<option value="%s"`, templ.EscapeString(name))
            if strings.EqualFold(name, selected) {
                b.WriteString(` selected`)
            }
            fmt.Fprintf(&b, `>%s</option>`, templ.EscapeString(name))
        }
        b.WriteString("</select>")
        _, err := io.WriteString(w, b.String())
        return err
    })
}

// Preview is the fragment swapped into #qr-preview: the select (out of
// band, replacing #palette-field so locking is visible), the inline image and the download link.
func Preview(d PreviewData) templ.Component {
    return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
        if _, err := io.WriteString(w, `<div id="palette-field" data-swap-oob>`); err != nil {
            return err
        }
        if err := PaletteSelect(d).Render(ctx, w); err != nil {
            return err
        }
        if _, err := io.WriteString(w, `</div>`); err != nil {
            return err
        }

        if d.Error != "" {
            return Toast(ToastProps{
                Title:       "Could not generate QR code",
                Description: d.Error,
                Variant:     VariantError,
                Duration:    4000,
                Dismissible: true,
            }).Render(ctx, w)
        }

        src := d.ImageURL()
        if src == "" {
            _, err := io.WriteString(w, `<p class="text-sm text-gray-500">Type a link or some text to see your QR code.</p>`)
            return err
        }
        _, err := fmt.Fprintf(w,
            `<img src="%s" alt="QR code" class="mx-auto h-64 w-64"/>`+
                `<a href="%s" download="qr_code.png" class="mt-4 inline-block rounded-md bg-gray-900 px-4 py-2 text-sm text-white">Download PNG</a>`,
            templ.EscapeString(src), templ.EscapeString(d.DownloadURL()))
        return err
    })
}
