package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to os.Stdout and os.Stderr
	Out io.Writer
	Err io.Writer
}

// NewOutputFormatter builds a formatter writing to the given streams
func NewOutputFormatter(jsonOutput, quiet bool, out, errOut io.Writer) *OutputFormatter {
	return &OutputFormatter{JSON: jsonOutput, Quiet: quiet, Out: out, Err: errOut}
}

func (f *OutputFormatter) stdout() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) stderr() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			_, err := fmt.Fprintf(f.stdout(), "%d\n", idGetter.GetID())
			return err
		}
		return nil
	}

	if f.JSON {
		return f.EncodeJSON(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	_, err := fmt.Fprintf(f.stdout(), "%v\n", data)
	return err
}

// EncodeJSON writes v as one JSON document on stdout
func (f *OutputFormatter) EncodeJSON(v any) error {
	return json.NewEncoder(f.stdout()).Encode(v)
}

// Println writes a human-readable line unless quiet mode is on
func (f *OutputFormatter) Println(a ...any) {
	if f.Quiet {
		return
	}
	_, _ = fmt.Fprintln(f.stdout(), a...)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return f.EncodeJSON(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error; quiet mode still reports failures
	if _, err := fmt.Fprintf(f.stderr(), "❌ Error: %s\n", message); err != nil {
		return err
	}
	if suggestion != "" {
		if _, err := fmt.Fprintf(f.stderr(), "💡 Suggestion: %s\n", suggestion); err != nil {
			return err
		}
	}
	return nil
}
