package token

import "errors"

var (
	ErrUnterminatedString  = errors.New("unterminated string")
	ErrUnterminatedComment = errors.New("unterminated comment")
	ErrBadEscape           = errors.New("invalid escape")
	ErrBadUnicode          = errors.New("invalid unicode escape")
	ErrNumber              = errors.New("invalid number")
	ErrUnexpectedByte      = errors.New("unexpected byte")
	ErrHeredocTag          = errors.New("invalid heredoc tag")
	ErrHeredocTerminator   = errors.New("heredoc terminator not found")
	ErrStringTooLong       = errors.New("string exceeds maximum length")
	ErrCommentTooLong      = errors.New("comment exceeds maximum length")
	ErrTooManyTokens       = errors.New("token limit exceeded")
	ErrHeredocTooLong      = errors.New("heredoc exceeds buffer limit")
)
