package domain

import "errors"

var (
	// ErrUnknownCommand indicates an unrecognized verb.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingArgument indicates a command that requires free text got none.
	ErrMissingArgument = errors.New("missing argument")

	// ErrNotAnImage indicates a selected file is not an image.
	ErrNotAnImage = errors.New("only image files are supported")

	// ErrMissingAltText indicates an upload was attempted without alt text.
	ErrMissingAltText = errors.New("alt text is required for accessibility")

	// ErrNotAuthenticated indicates a command that publishes or reacts was
	// issued without an authenticated session.
	ErrNotAuthenticated = errors.New("not authenticated")
)
