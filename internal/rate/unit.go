package rate

import "strings"

// Unit selects the phonetic quantity a rate counts.
type Unit string

const (
	UnitMora     Unit = "mora"
	UnitKana     Unit = "kana"
	UnitSyllable Unit = "syllable"
)

// Reader is the phonological collaborator: reading conversion plus the
// three unit counters.
type Reader interface {
	ToKana(text string, stripSokuon bool) string
	CountMora(reading string) int
	CountKana(reading string) int
	CountSyllable(reading string) int
}

// Valid reports whether u names a known unit.
func (u Unit) Valid() bool {
	switch u {
	case UnitMora, UnitKana, UnitSyllable:
		return true
	}
	return false
}

// StripSokuon reports whether readings should lose the geminate marker
// before counting under this unit. Sokuon participates in mora and
// syllable timing but is not a distinct glyph position for the kana
// metric. Decided here, once per run, rather than re-branched at call
// sites.
func (u Unit) StripSokuon() bool {
	return u == UnitKana
}

// Count applies the unit's counter to reading.
func (u Unit) Count(r Reader, reading string) int {
	switch u {
	case UnitMora:
		return r.CountMora(reading)
	case UnitSyllable:
		return r.CountSyllable(reading)
	default:
		return r.CountKana(reading)
	}
}

// Label returns the unit's report column header.
func (u Unit) Label() string {
	return strings.ToUpper(string(u))
}
