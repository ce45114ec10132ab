package locationsearch

import "github.com/flight-alert/flight-alert-service/internal/domain"

// resultSink holds the observable outcome of the session's searches.
// It is only touched with the controller lock held.
type resultSink struct {
	results      []domain.Airport
	loading      bool
	errorMessage string
}

func (s *resultSink) begin() {
	s.loading = true
	s.errorMessage = ""
}

// succeed replaces the result list wholesale.
func (s *resultSink) succeed(airports []domain.Airport) {
	if airports == nil {
		airports = []domain.Airport{}
	}
	s.results = airports
	s.errorMessage = ""
	s.loading = false
}

func (s *resultSink) fail(err error) {
	s.results = []domain.Airport{}
	s.errorMessage = ErrorMessage(err)
	s.loading = false
}

func (s *resultSink) clearResults() {
	s.results = []domain.Airport{}
}

// reset returns the sink to idle: no results, no error, not loading.
func (s *resultSink) reset() {
	s.results = []domain.Airport{}
	s.errorMessage = ""
	s.loading = false
}
