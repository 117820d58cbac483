package schema

import (
	"strings"
	"time"
	"unicode"
)

const (
	ProfileCollection = "users"
)

// Profile - the personal data collected after the first sign in
type Profile struct {
	ID        string    `json:"-" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Age       string    `json:"age" bson:"age"`
	Job       string    `json:"job" bson:"job"`
	Gender    string    `json:"gender" bson:"gender"`
	Email     string    `json:"email" bson:"email,omitempty"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`

	// keys written by early clients
	LegacyName string `json:"-" bson:"nama,omitempty"`
	LegacyAge  string `json:"-" bson:"umur,omitempty"`
	LegacyJob  string `json:"-" bson:"pekerjaan,omitempty"`
}

// Normalize fills the current fields from the legacy keys when they are empty
func (p *Profile) Normalize() {
	if p.Name == "" {
		p.Name = p.LegacyName
	}
	if p.Age == "" {
		p.Age = p.LegacyAge
	}
	if p.Job == "" {
		p.Job = p.LegacyJob
	}
}

// Initial is the first letter of the name, upper cased. It falls back to
// the email and then to "U".
func (p Profile) Initial() string {
	for _, s := range []string{p.Name, p.LegacyName, p.Email} {
		for _, r := range strings.TrimSpace(s) {
			return string(unicode.ToUpper(r))
		}
	}
	return "U"
}

type Gender string

const (
	GenderMale   Gender = "Laki-laki"
	GenderFemale Gender = "Perempuan"
	GenderOther  Gender = "Lainnya"
)

var Genders = []Gender{GenderMale, GenderFemale, GenderOther}
