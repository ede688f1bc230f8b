package fleet

import (
	"math/rand"
	"strings"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/reference"
)

const (
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
)

// RegistrationScheme describes how a country forms civil registrations
type RegistrationScheme struct {
	Prefix  string
	Charset string
	Length  int
}

// DefaultScheme is used for countries missing from RegistrationSchemes.
var DefaultScheme = RegistrationScheme{Prefix: "N", Charset: digits, Length: 5}

// RegistrationSchemes is keyed by country name.
var RegistrationSchemes = map[string]RegistrationScheme{
	"United Kingdom": {Prefix: "G-", Charset: letters, Length: 4},
	"Germany":        {Prefix: "D-", Charset: letters, Length: 4},
	"France":         {Prefix: "F-", Charset: letters, Length: 4},
	"Canada":         {Prefix: "C-", Charset: letters, Length: 4},
	"Italy":          {Prefix: "I-", Charset: letters, Length: 4},
	"Australia":      {Prefix: "VH-", Charset: letters, Length: 3},
	"Ireland":        {Prefix: "EI-", Charset: letters, Length: 3},
	"Switzerland":    {Prefix: "HB-", Charset: letters, Length: 3},
	"Netherlands":    {Prefix: "PH-", Charset: letters, Length: 3},
	"Spain":          {Prefix: "EC-", Charset: letters, Length: 3},
	"New Zealand":    {Prefix: "ZK-", Charset: letters, Length: 3},
	"United States":  DefaultScheme,
	"Japan":          {Prefix: "JA", Charset: digits, Length: 4},
}

// SchemeFor picks the registration scheme for a location string.
func SchemeFor(location string) RegistrationScheme {
	country, ok := reference.CountryForLocation(location)
	if !ok {
		return DefaultScheme
	}
	if s, ok := RegistrationSchemes[country]; ok {
		return s
	}
	return DefaultScheme
}

// Generate builds one registration following the scheme.
func (s RegistrationScheme) Generate(rng *rand.Rand) string {
	var b strings.Builder
	b.WriteString(s.Prefix)
	for i := 0; i < s.Length; i++ {
		b.WriteByte(s.Charset[rng.Intn(len(s.Charset))])
	}
	return b.String()
}

// GenerateRegistration synthesizes a registration for an aircraft based at
// location, avoiding the ones already taken.
func GenerateRegistration(rng *rand.Rand, location string, taken map[string]bool) string {
	scheme := SchemeFor(location)
	reg := scheme.Generate(rng)
	for attempt := 0; taken[reg] && attempt < 100; attempt++ {
		reg = scheme.Generate(rng)
	}
	return reg
}
