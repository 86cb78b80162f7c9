package token

type scanOpts struct {
	comments       bool
	timeSuffixes   bool
	sizeSuffixes   bool
	binarySizes    bool
	zeroCopy       bool
	maxStringLen   int
	maxCommentLen  int
	maxTokens      int
	maxHeredocLen  int
}

func defaultScanOpts() scanOpts {
	return scanOpts{
		timeSuffixes:  true,
		sizeSuffixes:  true,
		zeroCopy:      true,
		maxStringLen:  1 << 20,
		maxCommentLen: 1 << 16,
		maxTokens:     0,
		maxHeredocLen: 1 << 20,
	}
}

type ScanOption func(*scanOpts)

// ScanComments emits comments as tokens instead of skipping them.
func ScanComments(v bool) ScanOption {
	return func(o *scanOpts) { o.comments = v }
}

// ScanTimeSuffixes toggles recognition of ms/s/min/h/d/w/y.
func ScanTimeSuffixes(v bool) ScanOption {
	return func(o *scanOpts) { o.timeSuffixes = v }
}

// ScanSizeSuffixes toggles recognition of size magnitude suffixes.
func ScanSizeSuffixes(v bool) ScanOption {
	return func(o *scanOpts) { o.sizeSuffixes = v }
}

// ScanBinarySizes makes the single-letter suffixes k/m/g 1024-based
// instead of 1000-based. The two-letter forms kb/mb/gb/tb are always
// 1024-based.
func ScanBinarySizes(v bool) ScanOption {
	return func(o *scanOpts) { o.binarySizes = v }
}

// ScanZeroCopy controls whether escape-free strings borrow from the
// input buffer. Off, every string payload is copied.
func ScanZeroCopy(v bool) ScanOption {
	return func(o *scanOpts) { o.zeroCopy = v }
}

func ScanMaxStringLen(n int) ScanOption {
	return func(o *scanOpts) { o.maxStringLen = n }
}

func ScanMaxCommentLen(n int) ScanOption {
	return func(o *scanOpts) { o.maxCommentLen = n }
}

// ScanMaxTokens caps the number of tokens produced; 0 means no cap.
func ScanMaxTokens(n int) ScanOption {
	return func(o *scanOpts) { o.maxTokens = n }
}

func ScanMaxHeredocLen(n int) ScanOption {
	return func(o *scanOpts) { o.maxHeredocLen = n }
}
