package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
	errEmptyHTTPAddress    = errors.New("http server address is empty")
)
