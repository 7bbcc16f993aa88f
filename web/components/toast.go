package components

import (
    "context"
    "fmt"
    "io"

    "github.com/a-h/templ"
    twmerge "github.com/Oudwins/tailwind-merge-go"
)

// Variant selects the toast color scheme.
type Variant string

const (
    VariantSuccess Variant = "success"
    VariantError   Variant = "error"
    VariantWarning Variant = "warning"
    VariantInfo    Variant = "info"
)

// ParseVariant maps a form value to a Variant, defaulting to success.
func ParseVariant(s string) Variant {
    switch s {
    case "error", "destructive":
        return VariantError
    case "warning":
        return VariantWarning
    case "info":
        return VariantInfo
    default:
        return VariantSuccess
    }
}

func (v Variant) classes() string {
    switch v {
    case VariantError:
        return "border-red-500 bg-red-50 text-red-900"
    case VariantWarning:
        return "border-amber-500 bg-amber-50 text-amber-900"
    case VariantInfo:
        return "border-sky-500 bg-sky-50 text-sky-900"
    default:
        return "border-emerald-500 bg-emerald-50 text-emerald-900"
    }
}

// ToastProps configures Toast.
type ToastProps struct {
    Title       string
    Description string
    Variant     Variant
    // Duration in milliseconds before the toast removes itself. Zero keeps it.
    Duration    int
    Dismissible bool
    Class       string
}

// Toast renders a bottom-right notification. preview.js removes it after
// Duration.
func Toast(p ToastProps) templ.Component {
    return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
        class := twmerge.Merge(
            "fixed bottom-4 right-4 z-50 w-80 rounded-md border-l-4 p-4 shadow-lg",
            p.Variant.classes(),
            p.Class,
        )
        if _, err := fmt.Fprintf(w, `<div role="status" data-variant="%s" class="%s"`,
            templ.EscapeString(string(p.Variant)), templ.EscapeString(class)); err != nil {
            return err
        }
        if p.Duration > 0 {
            if _, err := fmt.Fprintf(w, ` data-duration="%d"`, p.Duration); err != nil {
                return err
            }
        }
        if _, err := io.WriteString(w, ">"); err != nil {
            return err
        }
        if p.Title != "" {
            if _, err := fmt.Fprintf(w, `<p class="font-semibold">%s</p>`, templ.EscapeString(p.Title)); err != nil {
                return err
            }
        }
        if p.Description != "" {
            if _, err := fmt.Fprintf(w, `<p class="text-sm">%s</p>`, templ.EscapeString(p.Description)); err != nil {
                return err
            }
        }
        if p.Dismissible {
            if _, err := io.WriteString(w, `<button type="button" aria-label="Close" class="absolute right-2 top-2" onclick="this.parentElement.remove()">&times;</button>`); err != nil {
                return err
            }
        }
        _, err := io.WriteString(w, "</div>")
        return err
    })
}
