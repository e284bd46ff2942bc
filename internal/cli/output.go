package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// OutputFormatter writes either aligned text fields or indented JSON.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

func (f *OutputFormatter) JSON() bool {
	return f.Format == "json"
}

func (f *OutputFormatter) WriteJSON(v any) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Field writes one "label  value" line with the value column at 22.
func (f *OutputFormatter) Field(label string, value any) {
	fmt.Fprintf(f.Writer, "%-22s%v\n", label+":", value)
}

func (f *OutputFormatter) Line(format string, args ...any) {
	fmt.Fprintf(f.Writer, format+"\n", args...)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
