// Package render turns one contact-card block into an HTML subtree.
//
// Two interchangeable strategies exist: direct node construction (the
// default) and placeholder substitution against a user-suppliable template.
// Both share the same normalization and URL derivation; a render pass is
// single-shot and keeps no state between invocations.
package render

import (
	"errors"
	"fmt"
	"html"
	"os"

	"github.com/mireku/cardik/internal/card"
)

type Strategy string

const (
	StrategyDOM      Strategy = "dom"
	StrategyTemplate Strategy = "template"
)

// ParseStrategy parses "dom" or "template".
func ParseStrategy(s string) (Strategy, bool) {
	switch Strategy(s) {
	case StrategyDOM, StrategyTemplate:
		return Strategy(s), true
	default:
		return StrategyDOM, false
	}
}

// TemplateError reports a configured external template that could not be read.
type TemplateError struct {
	Path string
	Err  error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("cannot read card template %s: %v", e.Path, e.Err)
}
func (e *TemplateError) Unwrap() error { return e.Err }

// Options configures a render pass. Zero values mean: DOM strategy, region
// US, built-in template, default provider hosts, os.ReadFile.
type Options struct {
	Strategy      Strategy
	DefaultRegion string
	TemplatePath  string // template strategy only; replaces the built-in wholesale
	Providers     card.ImageProviders
	ReadFile      func(string) ([]byte, error) // host file-read hook
}

func (o Options) withDefaults() Options {
	if o.Strategy == "" {
		o.Strategy = StrategyDOM
	}
	if o.DefaultRegion == "" {
		o.DefaultRegion = "US"
	}
	if o.ReadFile == nil {
		o.ReadFile = os.ReadFile
	}
	return o
}

// Card renders one block body to card HTML. Errors are returned raw; use
// Block to get the inline error node behavior instead.
func Card(src string, opts Options) (string, error) {
	opts = opts.withDefaults()

	rec, err := card.Parse(src)
	if err != nil {
		return "", err
	}
	if rec == nil {
		rec = card.Default()
	}

	img := card.ResolveImages(rec, opts.Providers)

	var phone card.Phone
	hasPhone := rec.Get("phone") != ""
	if hasPhone {
		phone, err = card.FormatPhone(rec.Get("phone"), opts.DefaultRegion)
		if err != nil {
			return "", err
		}
	}

	switch opts.Strategy {
	case StrategyTemplate:
		return renderTemplate(rec, img, phone, hasPhone, opts)
	default:
		return renderDOM(rec, img, phone, hasPhone)
	}
}

// Block renders one block body, converting any failure into a single inline
// error node. Partial output is discarded; each invocation is independent.
func Block(src string, opts Options) string {
	out, err := Card(src, opts)
	if err != nil {
		return ErrorNode(err)
	}
	return out
}

// ErrorNode renders the inline error div shown in place of a failed card.
func ErrorNode(err error) string {
	return `<div class="contact-card-error">` + html.EscapeString(errorMessage(err)) + `</div>`
}

// errorMessage derives a human-readable message: typed-error name + message,
// then the raw error text, then a hardcoded fallback.
func errorMessage(err error) string {
	var perr *card.ParseError
	if errors.As(err, &perr) {
		return "ParseError - " + perr.Err.Error()
	}
	var pherr *card.PhoneError
	if errors.As(err, &pherr) {
		return "PhoneError - " + pherr.Error()
	}
	var terr *TemplateError
	if errors.As(err, &terr) {
		return "TemplateError - " + terr.Error()
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return "Something went wrong"
}
