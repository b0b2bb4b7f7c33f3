package http

import "github.com/fwojciec/spotlight"

func unavailable(format string, args ...any) error {
	return spotlight.Errorf(spotlight.EUNAVAILABLE, format, args...)
}

func internal(format string, args ...any) error {
	return spotlight.Errorf(spotlight.EINTERNAL, format, args...)
}
