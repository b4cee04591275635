package render

import (
	"html"
	"strings"

	"github.com/mireku/cardik/internal/card"
)

// hiddenClass marks optional blocks in the template; revealing a field means
// stripping the marker from its container.
const hiddenClass = "contact-card-hidden"

// builtinTemplate is the default card markup for the substitution strategy.
// {{field}} tokens are replaced by record values; blocks carrying the hidden
// marker stay hidden unless their field was present in the input.
const builtinTemplate = `<div class="contact-card-container">
  <div class="contact-card-content">
    <div class="contact-card">
      <a class="contact-card-photo" title="Search on LinkedIn" href="https://www.linkedin.com/search/results/people/?keywords={{name}}"><img src="{{photo_url}}"/></a>
      <a class="contact-card-logo contact-card-hidden" title="View website" href="{{company_url}}"><img src="{{logo_url}}" onerror="this.style.display='none'"/></a>
      <div class="contact-card-info">
        <div class="contact-card-name">{{name}}</div>
        <div class="contact-card-title contact-card-hidden">{{title}}</div>
        <div class="contact-card-separator">&nbsp;</div>
        <div class="contact-card-company contact-card-hidden">{{company}}</div>
        <div class="contact-card-email contact-card-hidden"><a title="Send email" href="mailto:{{email}}">{{email}}</a></div>
        <div class="contact-card-phone contact-card-hidden"><a title="Call number" href="tel:{{phone_dial}}">{{phone}}</a></div>
        <div class="contact-card-location contact-card-hidden"><a title="View on map" href="https://www.google.com/maps/place/{{location}}">{{location}}</a></div>
        <div class="contact-card-separator">&nbsp;</div>
        {{extra_fields}}
      </div>
    </div>
  </div>
</div>`

// slotClasses are class-name suffixes already claimed by fixed template
// nodes; leftover keys colliding with one are skipped.
var slotClasses = map[string]bool{
	"container": true, "content": true, "photo": true, "logo": true,
	"info": true, "name": true, "title": true, "separator": true,
	"company": true, "email": true, "phone": true, "location": true,
	"hidden": true, "error": true,
}

// renderTemplate substitutes record fields into the template. The record is
// not consumed; presence of each field decides visibility toggling instead.
func renderTemplate(rec *card.Record, img card.Images, phone card.Phone, hasPhone bool, opts Options) (string, error) {
	tpl := builtinTemplate
	if opts.TemplatePath != "" {
		data, err := opts.ReadFile(opts.TemplatePath)
		if err != nil {
			return "", &TemplateError{Path: opts.TemplatePath, Err: err}
		}
		tpl = string(data)
	}

	// Image tags render whether or not their block is visible, so image
	// placeholders are always substituted; an empty src is tolerated.
	tpl = strings.ReplaceAll(tpl, "{{photo_url}}", html.EscapeString(img.PhotoURL))
	tpl = strings.ReplaceAll(tpl, "{{logo_url}}", html.EscapeString(img.LogoURL))
	companyURL := ""
	if img.Domain != "" {
		companyURL = "https://www." + img.Domain
	}
	tpl = strings.ReplaceAll(tpl, "{{company_url}}", html.EscapeString(companyURL))

	// The name slot and its search link carry no hidden marker, so the name
	// token is substituted unconditionally; an absent name renders empty.
	tpl = strings.ReplaceAll(tpl, "{{name}}", html.EscapeString(rec.Get("name")))
	for _, key := range []string{"title", "company", "email", "location"} {
		if !rec.Has(key) {
			continue
		}
		tpl = strings.ReplaceAll(tpl, "{{"+key+"}}", html.EscapeString(rec.Get(key)))
	}
	if hasPhone {
		tpl = strings.ReplaceAll(tpl, "{{phone}}", html.EscapeString(phone.Display))
		tpl = strings.ReplaceAll(tpl, "{{phone_dial}}", html.EscapeString(phone.Dial))
	}

	// Reveal the blocks whose fields were actually present. Absent fields
	// stay hidden even where their placeholder text was left unsubstituted.
	for _, key := range []string{"title", "company", "email", "phone", "location"} {
		if rec.Has(key) {
			tpl = reveal(tpl, key)
		}
	}
	// The logo is one visual unit with the company line.
	if rec.Has("company") {
		tpl = reveal(tpl, "logo")
	}

	var extra strings.Builder
	for _, k := range rec.Leftovers() {
		if slotClasses[k] {
			continue
		}
		// The key lands inside a class attribute; restrict it to a
		// class-safe charset so no authored key can break out of the tag.
		extra.WriteString(`<div class="contact-card-` + classToken(k) + `">`)
		extra.WriteString(html.EscapeString(k + ": " + rec.Get(k)))
		extra.WriteString("</div>")
	}
	tpl = strings.ReplaceAll(tpl, "{{extra_fields}}", extra.String())

	return tpl, nil
}

func reveal(tpl, key string) string {
	return strings.ReplaceAll(tpl, "contact-card-"+key+" "+hiddenClass, "contact-card-"+key)
}

// classToken maps an arbitrary field key onto a CSS-class-safe token.
func classToken(k string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, k)
}
