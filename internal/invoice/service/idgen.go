package service

import (
	"sync"
	"time"

	"github.com/smallbiznis/leadflow/internal/invoice/format"
)

// stampSource hands out strictly increasing millisecond stamps so two
// invoices created in the same millisecond still get distinct ids.
type stampSource struct {
	mu   sync.Mutex
	last int64
}

func (s *stampSource) next(now time.Time) int64 {
	stamp := now.UnixMilli()

	s.mu.Lock()
	defer s.mu.Unlock()
	if stamp <= s.last {
		stamp = s.last + 1
	}
	s.last = stamp
	return stamp
}

func (s *Service) nextInvoiceID(now time.Time) (string, error) {
	return format.FormatInvoiceID(s.stamps.next(now))
}
