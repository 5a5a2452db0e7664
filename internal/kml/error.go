package kml

import "fmt"

type StatusCodeError struct {
	StatusCode int
	URL        string
}

func (s *StatusCodeError) Error() string {
	return fmt.Sprintf("invalid status code (StatusCode: %d, URL: %s)", s.StatusCode, s.URL)
}

type ParseError struct {
	Tuple string
	Err   error
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("invalid coordinate tuple %q: %v", p.Tuple, p.Err)
}

func (p *ParseError) Unwrap() error {
	return p.Err
}
