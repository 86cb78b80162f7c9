package parse

import (
	"github.com/ucl-format/go-ucl/token"
	"github.com/ucl-format/go-ucl/vars"
)

type parseOpts struct {
	resolver vars.Handler
	warn     func(error)
	comments bool
	maxDepth int
	suffixes []NumberSuffixHandler
	strHooks []StringPostProcessor
	checks   []ValidationHook
	scanOpts []token.ScanOption
}

func defaultParseOpts() parseOpts {
	return parseOpts{maxDepth: 128}
}

type ParseOption func(*parseOpts)

// ParseVars installs the handler consulted for $NAME and ${NAME}
// references in double-quoted and heredoc strings. Without a handler
// references are preserved verbatim.
func ParseVars(h vars.Handler) ParseOption {
	return func(o *parseOpts) { o.resolver = h }
}

// ParseWarn installs a callback for non-fatal diagnostics such as
// circular variable references.
func ParseWarn(f func(error)) ParseOption {
	return func(o *parseOpts) { o.warn = f }
}

// ParseComments attaches comments to the nodes they precede.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}

// ParseMaxDepth caps object and array nesting. The default is 128.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// WithNumberSuffix appends a handler for unrecognized number suffixes.
func WithNumberSuffix(h NumberSuffixHandler) ParseOption {
	return func(o *parseOpts) { o.suffixes = append(o.suffixes, h) }
}

// WithStringHook appends a post-processor applied to string values.
func WithStringHook(h StringPostProcessor) ParseOption {
	return func(o *parseOpts) { o.strHooks = append(o.strHooks, h) }
}

// WithValidation appends a hook run on each key's final value.
func WithValidation(h ValidationHook) ParseOption {
	return func(o *parseOpts) { o.checks = append(o.checks, h) }
}

// ParseScanOptions forwards options to the underlying scanner, for
// suffix tables, size bases, and resource limits.
func ParseScanOptions(opts ...token.ScanOption) ParseOption {
	return func(o *parseOpts) { o.scanOpts = append(o.scanOpts, opts...) }
}
