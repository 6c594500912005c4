package driver

// options collects the functional options a Parse or Compile call may
// be given.
type options struct {
	requireFullMatch bool
	skipWellFormed   bool
	initialCtx       interface{}
}

// defaultOptions matches the recognized-keys default: require_full_match
// and well_formed_check both default to true.
func defaultOptions() *options {
	return &options{requireFullMatch: true}
}

// Option configures a Compile or Parse call.
type Option func(*options)

// RequireFullMatch demands that a successful parse consume the entire
// input; a partial match that stops before EOF is reported as a
// Failure instead, using the furthest-error position and causes
// accumulated during the attempt. This is the default; it only needs to
// be passed explicitly after a prior AllowPartialMatch in the same
// option list.
func RequireFullMatch() Option {
	return func(o *options) { o.requireFullMatch = true }
}

// AllowPartialMatch disables the default require-full-match behavior: a
// successful parse that stops short of EOF is still reported as a
// Success, with EndPos short of the input's length.
func AllowPartialMatch() Option {
	return func(o *options) { o.requireFullMatch = false }
}

// SkipWellFormedCheck bypasses the analysis.Check pass in Compile. Only
// useful once a grammar has already been verified elsewhere (e.g. in a
// test suite) and compile-time latency matters; Parse against an
// ill-formed, unchecked grammar may not terminate.
func SkipWellFormedCheck() Option {
	return func(o *options) { o.skipWellFormed = true }
}

// InitialCtx seeds the parse state's user-context value;
// nil if omitted.
func InitialCtx(ctx interface{}) Option {
	return func(o *options) { o.initialCtx = ctx }
}
