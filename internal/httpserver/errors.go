package httpserver

import "errors"

var errDatabaseUnreachable = errors.New("database unreachable")
