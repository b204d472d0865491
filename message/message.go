// Package message provides producers of QR payload bytes for common
// content kinds: plain text, URLs, Wi-Fi credentials, mail, phone and
// geo locations. Every producer implements qrcode.Message and can be
// passed to Document.UpdateMessage.
//
// Producers format payloads; they do not validate semantics. A URL is
// emitted as given, well formed or not.
package message

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Text carries a plain string payload.
//
// QR byte-mode content is conventionally interpreted as ISO 8859-1.
// When the string is representable in that charset it is transcoded, so
// legacy scanners decode accented text correctly; otherwise the UTF-8
// bytes are used as-is.
type Text struct {
	Content string
}

// PayloadBytes returns the encoded payload.
func (t Text) PayloadBytes() []byte {
	if encoded, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(t.Content)); err == nil {
		return encoded
	}
	return []byte(t.Content)
}

// URL carries a link payload.
type URL struct {
	URL string
}

// PayloadBytes returns the URL bytes unmodified.
func (u URL) PayloadBytes() []byte {
	return []byte(u.URL)
}

// Auth is the Wi-Fi authentication mode.
type Auth string

const (
	AuthWPA  Auth = "WPA"
	AuthWEP  Auth = "WEP"
	AuthNone Auth = "nopass"
)

// WiFi carries network credentials in the de-facto "WIFI:" payload
// syntax understood by phone cameras.
type WiFi struct {
	SSID     string
	Password string
	Auth     Auth
	Hidden   bool
}

// PayloadBytes formats the WIFI: payload. The special characters
// \ ; , : " are backslash-escaped per the syntax.
func (w WiFi) PayloadBytes() []byte {
	auth := w.Auth
	if auth == "" {
		auth = AuthWPA
	}
	var b strings.Builder
	b.WriteString("WIFI:")
	fmt.Fprintf(&b, "T:%s;", auth)
	fmt.Fprintf(&b, "S:%s;", escape(w.SSID))
	if auth != AuthNone {
		fmt.Fprintf(&b, "P:%s;", escape(w.Password))
	}
	if w.Hidden {
		b.WriteString("H:true;")
	}
	b.WriteString(";")
	return []byte(b.String())
}

// Mail carries a mailto payload.
type Mail struct {
	To      string
	Subject string
}

// PayloadBytes formats the mailto: payload.
func (m Mail) PayloadBytes() []byte {
	s := "mailto:" + m.To
	if m.Subject != "" {
		s += "?subject=" + m.Subject
	}
	return []byte(s)
}

// Phone carries a tel payload.
type Phone struct {
	Number string
}

// PayloadBytes formats the tel: payload.
func (p Phone) PayloadBytes() []byte {
	return []byte("tel:" + p.Number)
}

// Geo carries a geographic coordinate payload.
type Geo struct {
	Latitude  float64
	Longitude float64
}

// PayloadBytes formats the geo: payload.
func (g Geo) PayloadBytes() []byte {
	return []byte(fmt.Sprintf("geo:%g,%g", g.Latitude, g.Longitude))
}

// escaper covers the reserved characters of the WIFI: syntax.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	`:`, `\:`,
	`"`, `\"`,
)

func escape(s string) string {
	return escaper.Replace(s)
}
