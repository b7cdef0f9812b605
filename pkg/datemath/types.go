package datemath

import "time"

// ISOFormat is the canonical calendar-date layout used across the service.
const ISOFormat = "2006-01-02"

// ResolveISO is Resolve formatted as an ISO YYYY-MM-DD string.
func (p *Parser) ResolveISO(utterance string, base time.Time) string {
	return p.Resolve(utterance, base).Format(ISOFormat)
}
