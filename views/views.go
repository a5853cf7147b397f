// Package views renders the studyblog pages as templ components.
package views

import "github.com/eringen/studyblog"

// Funcs returns the view set the app renders pages with.
func Funcs() studyblog.ViewFuncs {
	return studyblog.ViewFuncs{
		Landing:     Landing,
		Feed:        Feed,
		FeedResults: FeedResults,
		Post:        Post,
		Login:       Login,
		Signup:      Signup,
		Write:       Write,
		Preview:     Preview,
		NotFound:    NotFound,
		ServerError: ServerError,
	}
}
