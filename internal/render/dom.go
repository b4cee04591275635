package render

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/mireku/cardik/internal/card"
)

// nbsp fills the separator rows so they keep their height.
const nbsp = "\u00a0"

// renderDOM builds the card subtree programmatically with a fixed layout.
// Each recognized field is consumed from the record as its slot is filled,
// so the trailing loop renders only genuinely-unrecognized fields.
func renderDOM(rec *card.Record, img card.Images, phone card.Phone, hasPhone bool) (string, error) {
	used := map[string]bool{"container": true, "content": true, "info": true, "separator": true}

	container := elem("div", attr("class", "contact-card-container"))
	content := elem("div", attr("class", "contact-card-content"))
	cardEl := elem("div", attr("class", "contact-card"))
	container.AppendChild(content)
	content.AppendChild(cardEl)

	// Photo links out to a people search on the contact's name.
	peopleSearch := "https://www.linkedin.com/search/results/people/?keywords=" + url.QueryEscape(rec.Get("name"))
	photo := elem("a",
		attr("class", "contact-card-photo"),
		attr("title", "Search on LinkedIn"),
		attr("href", peopleSearch))
	photo.AppendChild(elem("img", attr("src", img.PhotoURL)))
	cardEl.AppendChild(photo)
	used["photo"] = true
	rec.Consume("photo_url")

	if img.LogoURL != "" {
		logo := elem("a",
			attr("class", "contact-card-company-logo"),
			attr("title", "View website"),
			attr("href", "https://www."+img.Domain))
		// Hide rather than show a broken-image glyph if the host is unreachable.
		logo.AppendChild(elem("img",
			attr("src", img.LogoURL),
			attr("onerror", "this.style.display='none'")))
		cardEl.AppendChild(logo)
		used["company-logo"] = true
	}
	rec.Consume("logo_url")
	rec.Consume("domain")

	info := elem("div", attr("class", "contact-card-info"))
	cardEl.AppendChild(info)

	info.AppendChild(textDiv("contact-card-name", rec.Consume("name")))
	used["name"] = true
	info.AppendChild(textDiv("contact-card-title", rec.Consume("title")))
	used["title"] = true
	info.AppendChild(textDiv("contact-card-separator", nbsp))
	info.AppendChild(textDiv("contact-card-company", rec.Consume("company")))
	used["company"] = true

	if email := rec.Get("email"); email != "" {
		d := elem("div", attr("class", "contact-card-email"))
		d.AppendChild(link("Send email", "mailto:"+email, email))
		info.AppendChild(d)
		used["email"] = true
		rec.Consume("email")
	}

	if hasPhone {
		d := elem("div", attr("class", "contact-card-phone"))
		d.AppendChild(link("Call number", "tel:"+phone.Dial, phone.Display))
		info.AppendChild(d)
		used["phone"] = true
		rec.Consume("phone")
	}

	if loc := rec.Get("location"); loc != "" {
		d := elem("div", attr("class", "contact-card-location"))
		d.AppendChild(link("View on map", "https://www.google.com/maps/place/"+url.PathEscape(loc), loc))
		info.AppendChild(d)
		used["location"] = true
		rec.Consume("location")
	}

	info.AppendChild(textDiv("contact-card-separator", nbsp))

	// Everything still in the record is a leftover field. Skip any key whose
	// derived class name would collide with a node already in the tree.
	for _, k := range rec.Keys() {
		if used[k] {
			continue
		}
		info.AppendChild(textDiv("contact-card-"+k, k+": "+rec.Get(k)))
		used[k] = true
	}

	var b strings.Builder
	if err := html.Render(&b, container); err != nil {
		return "", err
	}
	return b.String(), nil
}

func elem(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func textDiv(class, text string) *html.Node {
	d := elem("div", attr("class", class))
	d.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return d
}

func link(title, href, text string) *html.Node {
	a := elem("a", attr("title", title), attr("href", href))
	a.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return a
}
